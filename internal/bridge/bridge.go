// Package bridge implements the cpy operations on top of a clip.Backend:
// copying a stream, copying a file (typed or raw) and pasting.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.klb.dev/cpy/internal/clip"
	"go.klb.dev/cpy/internal/mimetype"
)

// ErrFileNotFound is returned when a file selected for a raw copy cannot be
// opened.
var ErrFileNotFound = errors.New("file not found")

// Bridge moves bytes between local streams, files and the clipboard.
type Bridge struct {
	backend clip.Backend
}

// New returns a Bridge that performs all clipboard I/O through backend.
func New(backend clip.Backend) *Bridge {
	return &Bridge{backend: backend}
}

// CopyStream reads r to the end and places the bytes on the clipboard
// unchanged.
func (b *Bridge) CopyStream(ctx context.Context, r io.Reader) error {
	data, err := clip.ReadStream(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logPayload("copy stream", data)
	return b.backend.WriteBytes(ctx, data)
}

// CopyFile copies the file at path. Files whose extension has a known MIME
// type are handed to the backend by reference; everything else is read here
// and copied as raw bytes.
func (b *Bridge) CopyFile(ctx context.Context, path string) error {
	plan := mimetype.Classify(path)
	slog.Debug("classified file", "path", path, "kind", plan.Kind, "mime", plan.MIME)

	if plan.Kind == mimetype.Typed {
		return b.backend.WriteFile(ctx, path, plan.MIME)
	}
	return b.copyRaw(ctx, path)
}

func (b *Bridge) copyRaw(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	data, err := clip.ReadStream(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	logPayload("copy file", data)
	return b.backend.WriteBytes(ctx, data)
}

// Paste writes the clipboard contents to w. If the backend fails after
// producing output, that output is still written before the error is
// returned.
func (b *Bridge) Paste(ctx context.Context, w io.Writer) error {
	data, readErr := b.backend.ReadAll(ctx)
	logPayload("paste", data)

	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return readErr
}
