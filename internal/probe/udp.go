package probe

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// UDPProber measures round-trip time by sending a small datagram to
// the resolved address and waiting for any reply before the deadline.
// Each call opens a fresh connected socket and closes it before
// returning.
type UDPProber struct {
	resolver Resolver
	port     uint16
	payload  []byte
}

func NewUDPProber(resolver Resolver, port uint16) *UDPProber {
	return &UDPProber{
		resolver: resolver,
		port:     port,
		payload:  []byte("ping"),
	}
}

func (p *UDPProber) Probe(ctx context.Context, host string, timeout time.Duration) shared.Outcome {
	addr, err := p.resolver.Resolve(ctx, host)
	if err != nil {
		slog.Debug("Resolution failed", "host", host, "error", err)
		return shared.ResolutionFailureOutcome()
	}
	slog.Debug("Resolved host", "host", host, "addr", addr)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "udp", netip.AddrPortFrom(addr, p.port).String())
	if err != nil {
		return shared.ErrorOutcome(err.Error())
	}
	defer conn.Close()

	// The deadline is strict: a reply arriving after it still counts
	// as a timeout.
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return shared.ErrorOutcome(err.Error())
	}

	start := time.Now()
	if _, err := conn.Write(p.payload); err != nil {
		return shared.ErrorOutcome(err.Error())
	}

	buf := make([]byte, 1024)
	_, err = conn.Read(buf)
	elapsed := time.Since(start)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return shared.TimeoutOutcome()
		}
		return shared.ErrorOutcome(err.Error())
	}

	return shared.SuccessOutcome(elapsed)
}
