// Package formdata builds multipart/form-data request bodies.
//
// A body is assembled from an ordered list of parts (text fields or file
// fields), serialized in a single pass, and returned together with the
// matching Content-Type header value. Part order is preserved, mirroring
// HTML form submission order.
//
// # Basic Usage
//
//	body, err := formdata.NewBuilder().
//	    AddText("model", "large-v3").
//	    AddFile("file", "audio.wav").
//	    Finish()
//	if err != nil {
//	    return err
//	}
//	// body.Bytes is the payload, body.ContentType() the header value.
//
// Or declaratively, with a deterministic boundary for tests:
//
//	body, err := formdata.Encode(
//	    []formdata.Part{
//	        formdata.Text("name", "Alice"),
//	        formdata.File("file", "1.txt", data),
//	    },
//	    formdata.WithBoundary("test-boundary"),
//	)
//
// Boundary tokens are random; collision with part content is best-effort
// and not checked by scanning — this is a documented limitation, not a
// guarantee.
package formdata
