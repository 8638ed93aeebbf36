package output

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

// JSONOutput writes attempt and summary records to a file or stdout
type JSONOutput struct {
	mu       sync.Mutex
	file     *os.File
	enc      *json.Encoder
	toStdout bool
}

func NewJSONOutput(filename string) (*JSONOutput, error) {
	if filename == "" {
		// Output to stdout
		return &JSONOutput{
			file:     os.Stdout,
			enc:      json.NewEncoder(os.Stdout),
			toStdout: true,
		}, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &JSONOutput{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

func (j *JSONOutput) SessionStart(host string, count uint, timeout time.Duration) {
	// No-op for JSON, only completed records are written
}

func (j *JSONOutput) AttemptStart(seq uint, host string) {
	// No-op for JSON, only completed records are written
}

func (j *JSONOutput) AttemptDone(attempt shared.Attempt) {
	j.mu.Lock()
	defer j.mu.Unlock()

	_ = j.enc.Encode(attempt)
}

func (j *JSONOutput) SessionDone(summary shared.Summary) {
	j.mu.Lock()
	defer j.mu.Unlock()

	_ = j.enc.Encode(summary)
}

func (j *JSONOutput) Close() error {
	if j.toStdout {
		return nil
	}
	return j.file.Close()
}
