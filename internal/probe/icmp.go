package probe

import (
	"context"
	"log/slog"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// ICMPProber measures round-trip time with a single ICMP echo
// request. Unprivileged mode uses a datagram ICMP socket; privileged
// mode uses a raw socket and needs elevated privileges.
type ICMPProber struct {
	resolver   Resolver
	privileged bool
}

func NewICMPProber(resolver Resolver, privileged bool) *ICMPProber {
	return &ICMPProber{resolver: resolver, privileged: privileged}
}

func (p *ICMPProber) Probe(ctx context.Context, host string, timeout time.Duration) shared.Outcome {
	addr, err := p.resolver.Resolve(ctx, host)
	if err != nil {
		slog.Debug("Resolution failed", "host", host, "error", err)
		return shared.ResolutionFailureOutcome()
	}

	// The address is already resolved, so the pinger only parses the
	// literal here.
	pinger, err := probing.NewPinger(addr.String())
	if err != nil {
		return shared.ErrorOutcome(err.Error())
	}
	pinger.SetPrivileged(p.privileged)
	pinger.Count = 1
	pinger.Timeout = timeout

	if err := pinger.RunWithContext(ctx); err != nil {
		return shared.ErrorOutcome(err.Error())
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return shared.TimeoutOutcome()
	}
	return shared.SuccessOutcome(stats.AvgRtt)
}
