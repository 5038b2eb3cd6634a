package formdata

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// DetectContentType guesses the MIME type of a file part. The extension
// is consulted first; when it is missing or unregistered the content is
// sniffed. mimetype.Detect always returns a type, falling back to
// application/octet-stream.
func DetectContentType(path string, data []byte) string {
	if ext := filepath.Ext(path); ext != "" {
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
	}
	return mimetype.Detect(data).String()
}
