// Package probe implements the probe engine: host resolution, single
// timed probe exchanges, and the sequential session loop that turns
// per-attempt outcomes into aggregate statistics.
package probe

import (
	"context"
	"net/netip"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// Resolver translates a host name into an address for one probe
// attempt.
type Resolver interface {
	Resolve(ctx context.Context, host string) (netip.Addr, error)
}

// Prober performs a single timed probe exchange against a host.
// Implementations classify every failure into an Outcome variant and
// never propagate errors; retry policy belongs to the caller.
type Prober interface {
	Probe(ctx context.Context, host string, timeout time.Duration) shared.Outcome
}
