package clip

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

// chunkReader returns at most size bytes per Read.
type chunkReader struct {
	data []byte
	size int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := min(r.size, len(p), len(r.data))
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestReadStreamConcatenatesChunks(t *testing.T) {
	for _, tc := range []struct {
		name string
		size int
		r    func([]byte) io.Reader
	}{
		{"empty", 0, func(b []byte) io.Reader { return bytes.NewReader(b) }},
		{"single short chunk", 100, func(b []byte) io.Reader { return bytes.NewReader(b) }},
		{"multi chunk short tail", 3*ChunkSize + 17, func(b []byte) io.Reader { return bytes.NewReader(b) }},
		{"exact chunk multiple", 4 * ChunkSize, func(b []byte) io.Reader { return &chunkReader{data: b, size: ChunkSize} }},
		{"short reads mid stream", 5000, func(b []byte) io.Reader { return &chunkReader{data: b, size: 700} }},
		{"one byte at a time", 3000, func(b []byte) io.Reader { return iotest.OneByteReader(bytes.NewReader(b)) }},
		{"data with EOF", 2500, func(b []byte) io.Reader { return iotest.DataErrReader(bytes.NewReader(b)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := payload(tc.size)
			got, err := ReadStream(tc.r(want))
			if err != nil {
				t.Fatalf("ReadStream: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("got %d bytes, want %d", len(got), len(want))
			}
		})
	}
}

func TestReadStreamKeepsNULBytes(t *testing.T) {
	want := []byte("a\x00b\x00\x00c")
	got, err := ReadStream(bytes.NewReader(want))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadStreamError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(boom))
	got, err := ReadStream(r)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if string(got) != "partial" {
		t.Fatalf("got %q, want partial data", got)
	}
}
