package probe

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// failingResolver always fails, standing in for an unknown host
type failingResolver struct {
	calls int
}

func (r *failingResolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	r.calls++
	return netip.Addr{}, errors.New("could not resolve " + host)
}

// udpListener binds a loopback UDP socket for the test. When echo is
// true it answers each datagram with its own payload.
func udpListener(t *testing.T, echo bool) uint16 {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if echo {
		go func() {
			buf := make([]byte, 1024)
			for {
				n, addr, err := conn.ReadFrom(buf)
				if err != nil {
					return
				}
				if _, err := conn.WriteTo(buf[:n], addr); err != nil {
					return
				}
			}
		}()
	}

	_, portStr, err := net.SplitHostPort(conn.LocalAddr().String())
	if err != nil {
		t.Fatalf("SplitHostPort() error = %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("Atoi(%q) error = %v", portStr, err)
	}
	return uint16(port)
}

func TestUDPProber_Success(t *testing.T) {
	port := udpListener(t, true)
	prober := NewUDPProber(NewSystemResolver(false, false), port)

	outcome := prober.Probe(context.Background(), "127.0.0.1", time.Second)

	if outcome.Kind != shared.Success {
		t.Fatalf("Kind = %v, want Success (message: %q)", outcome.Kind, outcome.Message)
	}
	if outcome.ElapsedMillis < 0 {
		t.Errorf("ElapsedMillis = %v, must be >= 0", outcome.ElapsedMillis)
	}
}

func TestUDPProber_Timeout(t *testing.T) {
	// Bound but silent socket: the read must give up at the deadline.
	port := udpListener(t, false)
	prober := NewUDPProber(NewSystemResolver(false, false), port)

	start := time.Now()
	outcome := prober.Probe(context.Background(), "127.0.0.1", 100*time.Millisecond)
	elapsed := time.Since(start)

	if outcome.Kind != shared.Timeout {
		t.Fatalf("Kind = %v, want Timeout", outcome.Kind)
	}
	if elapsed > time.Second {
		t.Errorf("probe blocked for %v, deadline was 100ms", elapsed)
	}
}

func TestUDPProber_ResolutionFailure(t *testing.T) {
	resolver := &failingResolver{}
	prober := NewUDPProber(resolver, 1)

	outcome := prober.Probe(context.Background(), "nonexistent.invalid", time.Second)

	if outcome.Kind != shared.ResolutionFailure {
		t.Fatalf("Kind = %v, want ResolutionFailure", outcome.Kind)
	}
	if resolver.calls != 1 {
		t.Errorf("resolver calls = %d, want 1", resolver.calls)
	}
}

func TestUDPProber_ResolvesEveryProbe(t *testing.T) {
	resolver := &failingResolver{}
	prober := NewUDPProber(resolver, 1)

	for i := 0; i < 3; i++ {
		prober.Probe(context.Background(), "nonexistent.invalid", time.Second)
	}

	if resolver.calls != 3 {
		t.Errorf("resolver calls = %d, want 3 (one per probe)", resolver.calls)
	}
}
