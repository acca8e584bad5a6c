package clip

import (
	"errors"
	"io"
)

// ChunkSize is the size of each read issued by ReadStream.
const ChunkSize = 2048

// ReadStream reads r in ChunkSize pieces until io.EOF. A short read is not
// treated as the end of the stream. On error the data read so far is returned
// with it.
func ReadStream(r io.Reader) ([]byte, error) {
	var data []byte
	buf := make([]byte, ChunkSize)
	for {
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}
