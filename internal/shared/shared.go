package shared

import (
	"time"
)

// OutcomeKind classifies the result of a single probe attempt.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	ResolutionFailure
	Timeout
	TransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case ResolutionFailure:
		return "resolution_failure"
	case Timeout:
		return "timeout"
	case TransportError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one probe attempt.
// ElapsedMillis is only meaningful for Success, Message only for
// TransportError.
type Outcome struct {
	Kind          OutcomeKind
	ElapsedMillis float64
	Message       string
}

// SuccessOutcome builds a Success outcome from a measured round-trip
// time. Negative elapsed time (clock adjustment) clamps to 0.
func SuccessOutcome(elapsed time.Duration) Outcome {
	if elapsed < 0 {
		elapsed = 0
	}
	return Outcome{
		Kind:          Success,
		ElapsedMillis: float64(elapsed) / float64(time.Millisecond),
	}
}

func ResolutionFailureOutcome() Outcome {
	return Outcome{Kind: ResolutionFailure}
}

func TimeoutOutcome() Outcome {
	return Outcome{Kind: Timeout}
}

func ErrorOutcome(msg string) Outcome {
	return Outcome{Kind: TransportError, Message: msg}
}

// Attempt is the record of one completed probe attempt
type Attempt struct {
	Seq           uint      `json:"seq"`
	Host          string    `json:"host"`
	Outcome       string    `json:"outcome"`
	ElapsedMillis float64   `json:"elapsed_ms,omitempty"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewAttempt builds the record for a completed attempt
func NewAttempt(seq uint, host string, outcome Outcome, ts time.Time) Attempt {
	a := Attempt{
		Seq:       seq,
		Host:      host,
		Outcome:   outcome.Kind.String(),
		Timestamp: ts,
	}
	if outcome.Kind == Success {
		a.ElapsedMillis = outcome.ElapsedMillis
	}
	if outcome.Kind == TransportError {
		a.Error = outcome.Message
	}
	return a
}

// Summary holds the aggregate result of a completed session.
// AvgMillis is only meaningful when Received > 0.
type Summary struct {
	Host      string    `json:"host"`
	Sent      uint      `json:"sent"`
	Received  uint      `json:"received"`
	Lost      uint      `json:"lost"`
	AvgMillis float64   `json:"avg_ms,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HasResponses reports whether at least one probe got a reply, i.e.
// whether AvgMillis is meaningful.
func (s Summary) HasResponses() bool {
	return s.Received > 0
}
