// Package cliptest provides an in-memory clip.Backend for tests.
package cliptest

import (
	"context"
	"fmt"

	"go.klb.dev/cpy/internal/clip"
)

// FileWrite records one WriteFile call.
type FileWrite struct {
	Path string
	MIME string
}

// Backend records writes and serves Contents on ReadAll. Setting ExitCode to
// a nonzero value makes every operation fail the way a failing utility would.
type Backend struct {
	Contents []byte
	ExitCode int

	Bytes [][]byte
	Files []FileWrite
	Reads int
}

var _ clip.Backend = (*Backend)(nil)

func (b *Backend) Name() string { return "fake" }

func (b *Backend) WriteBytes(_ context.Context, data []byte) error {
	b.Bytes = append(b.Bytes, append([]byte(nil), data...))
	if err := b.exitErr(); err != nil {
		return fmt.Errorf("%w: %w", clip.ErrCopyFailed, err)
	}
	return nil
}

func (b *Backend) WriteFile(_ context.Context, path, mime string) error {
	b.Files = append(b.Files, FileWrite{Path: path, MIME: mime})
	if err := b.exitErr(); err != nil {
		return fmt.Errorf("%w: %w", clip.ErrCopyFailed, err)
	}
	return nil
}

func (b *Backend) ReadAll(_ context.Context) ([]byte, error) {
	b.Reads++
	if err := b.exitErr(); err != nil {
		return b.Contents, fmt.Errorf("%w: %w", clip.ErrReadFailed, err)
	}
	return b.Contents, nil
}

func (b *Backend) exitErr() error {
	if b.ExitCode == 0 {
		return nil
	}
	return &clip.ExitError{Prog: "fake", Code: b.ExitCode}
}
