package bridge

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.klb.dev/cpy/internal/clip"
	"go.klb.dev/cpy/internal/clip/cliptest"
)

func TestCopyStream(t *testing.T) {
	fake := &cliptest.Backend{}
	want := bytes.Repeat([]byte("line\x00\n"), 1000)

	if err := New(fake).CopyStream(context.Background(), bytes.NewReader(want)); err != nil {
		t.Fatalf("CopyStream: %v", err)
	}
	if len(fake.Bytes) != 1 || !bytes.Equal(fake.Bytes[0], want) {
		t.Fatalf("backend received %d writes", len(fake.Bytes))
	}
}

func TestCopyFileTyped(t *testing.T) {
	fake := &cliptest.Backend{}
	// Typed copies never open the file, so it need not exist.
	path := filepath.Join(t.TempDir(), "shot.png")

	if err := New(fake).CopyFile(context.Background(), path); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if len(fake.Files) != 1 || fake.Files[0] != (cliptest.FileWrite{Path: path, MIME: "image/png"}) {
		t.Fatalf("files = %+v", fake.Files)
	}
	if len(fake.Bytes) != 0 {
		t.Fatalf("typed copy also wrote raw bytes")
	}
}

func TestCopyFileRaw(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"README", "notes.txt", "ends."} {
		t.Run(name, func(t *testing.T) {
			fake := &cliptest.Backend{}
			path := filepath.Join(dir, name)
			want := []byte("contents of " + name)
			if err := os.WriteFile(path, want, 0o644); err != nil {
				t.Fatal(err)
			}

			if err := New(fake).CopyFile(context.Background(), path); err != nil {
				t.Fatalf("CopyFile: %v", err)
			}
			if len(fake.Files) != 0 {
				t.Fatalf("raw copy went through WriteFile: %+v", fake.Files)
			}
			if len(fake.Bytes) != 1 || !bytes.Equal(fake.Bytes[0], want) {
				t.Fatalf("backend received %q", fake.Bytes)
			}
		})
	}
}

func TestCopyFileRawMissing(t *testing.T) {
	fake := &cliptest.Backend{}
	err := New(fake).CopyFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v does not wrap os.ErrNotExist", err)
	}
	if len(fake.Bytes) != 0 {
		t.Fatal("backend was called for a missing file")
	}
}

func TestPaste(t *testing.T) {
	fake := &cliptest.Backend{Contents: []byte("clipboard\x00data")}
	var out bytes.Buffer

	if err := New(fake).Paste(context.Background(), &out); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if out.String() != "clipboard\x00data" {
		t.Fatalf("out = %q", out.String())
	}
}

func TestPasteFailureStillWritesOutput(t *testing.T) {
	fake := &cliptest.Backend{Contents: []byte("partial"), ExitCode: 1}
	var out bytes.Buffer

	err := New(fake).Paste(context.Background(), &out)
	if !errors.Is(err, clip.ErrReadFailed) {
		t.Fatalf("err = %v, want ErrReadFailed", err)
	}
	if out.String() != "partial" {
		t.Fatalf("out = %q", out.String())
	}
}

func TestBackendFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	b := New(&cliptest.Backend{ExitCode: 1})

	if err := b.CopyStream(ctx, strings.NewReader("x")); !errors.Is(err, clip.ErrCopyFailed) {
		t.Errorf("CopyStream err = %v", err)
	}
	if err := b.CopyFile(ctx, "doc.pdf"); !errors.Is(err, clip.ErrCopyFailed) {
		t.Errorf("CopyFile err = %v", err)
	}
	var ee *clip.ExitError
	if err := b.CopyFile(ctx, "doc.pdf"); !errors.As(err, &ee) || ee.Code != 1 {
		t.Errorf("CopyFile err = %v, want exit status 1", err)
	}
}
