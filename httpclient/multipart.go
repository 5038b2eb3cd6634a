package httpclient

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/formwire/formwire/formdata"
)

// MultipartBody represents a multipart/form-data request body. Pass it
// as the Body field of a Request; the client encodes it during request
// building and sets the matching Content-Type header.
type MultipartBody struct {
	// Parts are the form fields, encoded in order.
	Parts []formdata.Part
	// Boundary optionally fixes the boundary token. Empty means a random
	// boundary is generated.
	Boundary string
}

// encode serializes the parts into a formdata body.
func (m *MultipartBody) encode() (*formdata.Body, error) {
	var opts []formdata.Option
	if m.Boundary != "" {
		opts = append(opts, formdata.WithBoundary(m.Boundary))
	}
	return formdata.Encode(m.Parts, opts...)
}

// SendMultipart POSTs the given parts as a multipart/form-data body.
func (c *Client) SendMultipart(ctx context.Context, path string, parts ...formdata.Part) (*Response, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   &MultipartBody{Parts: parts},
	})
}

// SendMultipartFile POSTs a single file as a multipart/form-data body.
// The part's filename is the file's base name and its content type is
// detected from the file. If the file cannot be read, the error is
// returned as-is and no request is sent.
func (c *Client) SendMultipartFile(ctx context.Context, path, field, filePath string) (*Response, error) {
	body, err := formdata.NewBuilder().AddFile(field, filePath).Finish()
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// SendMultipartFiles POSTs several files in one multipart/form-data
// body. Each part's field name is the file's base name. If any file
// cannot be read, the error is returned as-is and no request is sent.
func (c *Client) SendMultipartFiles(ctx context.Context, path string, filePaths []string) (*Response, error) {
	builder := formdata.NewBuilder()
	for _, fp := range filePaths {
		builder.AddFile(filepath.Base(fp), fp)
	}
	body, err := builder.Finish()
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}
