package output

import (
	"fmt"
	"io"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// TextOutput writes human-readable session output to a stream
type TextOutput struct {
	w io.Writer
}

func NewTextOutput(w io.Writer) *TextOutput {
	return &TextOutput{w: w}
}

func (t *TextOutput) SessionStart(host string, count uint, timeout time.Duration) {
	fmt.Fprintf(t.w, "Starting ping to %s with %d requests and %s timeout.\n", host, count, timeout)
}

func (t *TextOutput) AttemptStart(seq uint, host string) {
	fmt.Fprintf(t.w, "Sending ping %d to %s...\n", seq, host)
}

func (t *TextOutput) AttemptDone(a shared.Attempt) {
	switch a.Outcome {
	case shared.Success.String():
		fmt.Fprintf(t.w, "Ping %d: Response time = %.2f ms\n", a.Seq, a.ElapsedMillis)
	case shared.ResolutionFailure.String():
		fmt.Fprintf(t.w, "Ping %d: Failed to resolve host: %s\n", a.Seq, a.Host)
	case shared.Timeout.String():
		fmt.Fprintf(t.w, "Ping %d: No response.\n", a.Seq)
	default:
		fmt.Fprintf(t.w, "Ping %d: Error: %s\n", a.Seq, a.Error)
	}
}

func (t *TextOutput) SessionDone(s shared.Summary) {
	if !s.HasResponses() {
		fmt.Fprintf(t.w, "No responses received from %s.\n", s.Host)
		return
	}
	fmt.Fprintf(t.w, "Ping statistics for %s:\n", s.Host)
	fmt.Fprintf(t.w, "  Packets: Sent = %d, Received = %d, Lost = %d\n", s.Sent, s.Received, s.Lost)
	fmt.Fprintf(t.w, "  Average response time = %.2f ms\n", s.AvgMillis)
}

func (t *TextOutput) Close() error {
	return nil
}
