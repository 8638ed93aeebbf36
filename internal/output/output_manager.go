package output

import (
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// Reporter interface for different output types
type Reporter interface {
	SessionStart(host string, count uint, timeout time.Duration)
	AttemptStart(seq uint, host string)
	AttemptDone(attempt shared.Attempt)
	SessionDone(summary shared.Summary)
	Close() error
}

// Manager fans session observations out to multiple reporters
type Manager struct {
	reporters []Reporter
}

func (m *Manager) Register(r Reporter) {
	m.reporters = append(m.reporters, r)
}

func (m *Manager) SessionStart(host string, count uint, timeout time.Duration) {
	for _, r := range m.reporters {
		r.SessionStart(host, count, timeout)
	}
}

func (m *Manager) AttemptStart(seq uint, host string) {
	for _, r := range m.reporters {
		r.AttemptStart(seq, host)
	}
}

func (m *Manager) AttemptDone(attempt shared.Attempt) {
	for _, r := range m.reporters {
		r.AttemptDone(attempt)
	}
}

func (m *Manager) SessionDone(summary shared.Summary) {
	for _, r := range m.reporters {
		r.SessionDone(summary)
	}
}

func (m *Manager) Close() error {
	var firstErr error
	for _, r := range m.reporters {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
