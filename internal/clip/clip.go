// Package clip talks to the system clipboard through an external
// selection-clipboard utility. Every call spawns one subprocess and waits for
// it before returning; nothing outlives the call.
package clip

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCopyFailed wraps any failure to place data on the clipboard.
	ErrCopyFailed = errors.New("failed to copy to clipboard")
	// ErrReadFailed wraps any failure to read the clipboard.
	ErrReadFailed = errors.New("error getting clipboard data")
)

// Backend is the clipboard capability the rest of cpy depends on.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// WriteBytes places data on the clipboard without a type hint.
	WriteBytes(ctx context.Context, data []byte) error

	// WriteFile asks the backend to load path itself and label it with mime.
	// The file is never read by this process.
	WriteFile(ctx context.Context, path, mime string) error

	// ReadAll returns the clipboard contents. On failure the bytes received
	// before the failure are returned alongside the error.
	ReadAll(ctx context.Context) ([]byte, error)
}

// ExitError reports a clipboard utility that ran but exited unsuccessfully.
type ExitError struct {
	Prog   string
	Code   int
	Stderr string
}

// Error includes the first line the utility wrote to stderr, if any.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Prog, e.Code)
	if e.Code < 0 {
		msg = e.Prog + " terminated by signal"
	}
	if line, _, _ := strings.Cut(e.Stderr, "\n"); line != "" {
		msg += ": " + strings.TrimSpace(line)
	}
	return msg
}
