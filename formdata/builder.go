package formdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Builder accumulates parts and serializes them in one shot. The first
// error encountered (a failed file read, an unframeable name) is
// remembered and returned by Finish; subsequent Add calls after an error
// are no-ops.
//
// Builders are not safe for concurrent use; each request should build
// its own body.
type Builder struct {
	parts []Part
	opts  []Option
	err   error
}

// NewBuilder creates an empty builder. The options are forwarded to the
// final Encode call.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// AddText appends a text field.
func (b *Builder) AddText(name, value string) *Builder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, Text(name, value))
	return b
}

// AddFile reads the file at path and appends it as a file field. The
// filename sent to the server is the path's base name and the content
// type is detected from the extension and content. Read failures are
// surfaced unchanged from Finish, wrapped so errors.Is(err,
// fs.ErrNotExist) and friends still hold.
func (b *Builder) AddFile(name, path string) *Builder {
	if b.err != nil {
		return b
	}
	data, err := os.ReadFile(path)
	if err != nil {
		b.err = fmt.Errorf("formdata: read %s: %w", path, err)
		return b
	}
	b.parts = append(b.parts, FileTyped(name, filepath.Base(path), DetectContentType(path, data), data))
	return b
}

// AddFileBytes appends in-memory content as a file field. An empty
// contentType falls back to application/octet-stream at encode time.
func (b *Builder) AddFileBytes(name, filename, contentType string, data []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, FileTyped(name, filename, contentType, data))
	return b
}

// AddReader drains r and appends the content as a file field. The reader
// is read fully within this call.
func (b *Builder) AddReader(name, filename, contentType string, r io.Reader) *Builder {
	if b.err != nil {
		return b
	}
	data, err := io.ReadAll(r)
	if err != nil {
		b.err = fmt.Errorf("formdata: read part %q: %w", name, err)
		return b
	}
	b.parts = append(b.parts, FileTyped(name, filename, contentType, data))
	return b
}

// Len returns the number of parts added so far.
func (b *Builder) Len() int {
	return len(b.parts)
}

// Finish serializes the accumulated parts. It returns the first deferred
// error, if any, without encoding.
func (b *Builder) Finish() (*Body, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Encode(b.parts, b.opts...)
}
