package probe

import (
	"context"
	"log/slog"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/output"
	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// Config holds the immutable settings for one probe session.
type Config struct {
	Host    string
	Count   uint
	Timeout time.Duration
}

// stats accumulates attempt results while the session loop runs
type stats struct {
	attempted   uint
	succeeded   uint
	totalMillis float64
}

// Session runs a fixed number of sequential probes against one host
// and derives the final statistics. It performs no I/O of its own;
// all network interaction happens inside the Prober.
type Session struct {
	config   Config
	prober   Prober
	reporter output.Reporter
}

func NewSession(config Config, prober Prober, reporter output.Reporter) *Session {
	return &Session{
		config:   config,
		prober:   prober,
		reporter: reporter,
	}
}

// Run executes the session: count attempts in order, each completing
// (including its timeout wait) before the next begins. Cancelling the
// context stops the loop between attempts; the summary then covers
// the attempts actually made.
func (s *Session) Run(ctx context.Context) shared.Summary {
	s.reporter.SessionStart(s.config.Host, s.config.Count, s.config.Timeout)

	var st stats
	for seq := uint(1); seq <= s.config.Count; seq++ {
		select {
		case <-ctx.Done():
			slog.Debug("Session cancelled", "completed_attempts", st.attempted)
			return s.finish(st)
		default:
		}

		s.reporter.AttemptStart(seq, s.config.Host)
		outcome := s.prober.Probe(ctx, s.config.Host, s.config.Timeout)

		st.attempted++
		if outcome.Kind == shared.Success {
			st.succeeded++
			st.totalMillis += outcome.ElapsedMillis
		}

		s.reporter.AttemptDone(shared.NewAttempt(seq, s.config.Host, outcome, time.Now()))
	}

	return s.finish(st)
}

func (s *Session) finish(st stats) shared.Summary {
	summary := shared.Summary{
		Host:      s.config.Host,
		Sent:      st.attempted,
		Received:  st.succeeded,
		Lost:      st.attempted - st.succeeded,
		Timestamp: time.Now(),
	}
	if st.succeeded > 0 {
		summary.AvgMillis = st.totalMillis / float64(st.succeeded)
	}
	s.reporter.SessionDone(summary)
	return summary
}
