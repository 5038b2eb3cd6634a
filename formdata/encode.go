package formdata

import (
	"bytes"
	"fmt"
	"strings"
)

const defaultFileContentType = "application/octet-stream"

// quoteEscaper escapes the characters that would terminate a quoted
// Content-Disposition parameter, the same way mime/multipart does.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Body is a fully serialized multipart/form-data payload.
type Body struct {
	// Bytes is the encoded payload, ready to send as a request body.
	Bytes []byte
	// Boundary is the delimiter token used between parts.
	Boundary string
}

// ContentType returns the Content-Type header value matching the body.
func (b *Body) ContentType() string {
	return "multipart/form-data; boundary=" + b.Boundary
}

// Option configures an Encode call.
type Option func(*encoder)

// WithBoundary sets an explicit boundary token. The token is validated
// against RFC 2046 and Encode fails with an EncodingError if it is not
// usable.
func WithBoundary(boundary string) Option {
	return func(e *encoder) { e.boundary = boundary }
}

// WithBoundaryFunc sets the boundary generator. Useful for deterministic
// boundaries in tests.
func WithBoundaryFunc(fn func() string) Option {
	return func(e *encoder) { e.generate = fn }
}

type encoder struct {
	boundary string
	generate func() string
	buf      bytes.Buffer
}

// Encode serializes parts into a multipart/form-data body. It is a
// single-pass, stateless transform: each call constructs its own
// boundary and buffer. Part order is preserved. An empty part list still
// produces a valid body consisting of the closing delimiter alone.
func Encode(parts []Part, opts ...Option) (*Body, error) {
	e := &encoder{generate: randomBoundary}
	for _, opt := range opts {
		opt(e)
	}
	if e.boundary == "" {
		e.boundary = e.generate()
	}
	if err := validateBoundary(e.boundary); err != nil {
		return nil, err
	}

	for _, part := range parts {
		if err := e.writePart(part); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(&e.buf, "--%s--\r\n", e.boundary)
	return &Body{Bytes: e.buf.Bytes(), Boundary: e.boundary}, nil
}

// writePart emits one part: delimiter, headers, blank line, content, CRLF.
func (e *encoder) writePart(part Part) error {
	name, err := headerValue(part.Name, part.Name)
	if err != nil {
		return err
	}
	if name == "" {
		return newEncodingError(part.Name, "field name must not be empty")
	}

	fmt.Fprintf(&e.buf, "--%s\r\n", e.boundary)

	switch part.Kind {
	case KindText:
		fmt.Fprintf(&e.buf, "Content-Disposition: form-data; name=\"%s\"\r\n\r\n", name)
		e.buf.WriteString(part.Value)
	case KindFile:
		filename, err := headerValue(part.Name, part.FileName)
		if err != nil {
			return err
		}
		contentType := part.ContentType
		if contentType == "" {
			contentType = defaultFileContentType
		}
		fmt.Fprintf(&e.buf, "Content-Disposition: form-data; name=\"%s\"; filename=\"%s\"\r\n", name, filename)
		fmt.Fprintf(&e.buf, "Content-Type: %s\r\n\r\n", contentType)
		e.buf.Write(part.Data)
	default:
		return newEncodingError(part.Name, fmt.Sprintf("unknown part kind %d", part.Kind))
	}

	e.buf.WriteString("\r\n")
	return nil
}

// headerValue rejects values that would break header framing and escapes
// quotes and backslashes. CR, LF and NUL have no safe escape inside a
// Content-Disposition parameter and are refused.
func headerValue(field, v string) (string, error) {
	if strings.ContainsAny(v, "\r\n\x00") {
		return "", newEncodingError(field, "value contains control characters")
	}
	return quoteEscaper.Replace(v), nil
}
