package bridge

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

const previewRunes = 120

// logPayload logs a clipboard transfer at DEBUG: the byte size, plus a text
// preview when the payload is valid UTF-8.
func logPayload(event string, data []byte) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if !utf8.Valid(data) {
		slog.Debug(event, "size_bytes", len(data))
		return
	}
	slog.Debug(event, "size_bytes", len(data), "preview", preview(data))
}

// preview returns the first previewRunes runes of data, cut on a rune
// boundary.
func preview(data []byte) string {
	n := 0
	for i := range string(data) {
		if n == previewRunes {
			return string(data[:i]) + "…"
		}
		n++
	}
	return string(data)
}
