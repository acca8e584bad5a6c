// Package mimetype maps file extensions to the MIME type hint passed to the
// clipboard utility.
package mimetype

import "strings"

// Kind says how a file should be placed on the clipboard.
type Kind int

const (
	// Raw copies the file's bytes with no type hint.
	Raw Kind = iota
	// Typed hands the path and a MIME type to the clipboard utility.
	Typed
)

func (k Kind) String() string {
	if k == Typed {
		return "typed"
	}
	return "raw"
}

// Plan is the result of classifying a path.
type Plan struct {
	Kind Kind
	MIME string // empty for Raw
}

var wellKnown = map[string]string{
	"json": "application/json",
	"pdf":  "application/pdf",
	"zip":  "application/zip",
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"js":   "text/javascript",
	"html": "text/html",
	"css":  "text/css",
}

// For returns the MIME type registered for ext (no leading dot).
// Matching is exact and case-sensitive.
func For(ext string) (string, bool) {
	mime, ok := wellKnown[ext]
	return mime, ok
}

// Classify decides how path should be copied. The extension is whatever
// follows the last '.' anywhere in path, so "dir.d/file" has extension
// "d/file" and is copied raw.
func Classify(path string) Plan {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return Plan{Kind: Raw}
	}
	if mime, ok := For(path[i+1:]); ok {
		return Plan{Kind: Typed, MIME: mime}
	}
	return Plan{Kind: Raw}
}
