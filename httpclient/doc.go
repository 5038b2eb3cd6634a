// Package httpclient provides a synchronous HTTP client focused on
// multipart/form-data uploads, with built-in authentication, TLS and
// retry support.
//
// The client wraps net/http: it builds the request (including encoding a
// formdata body and setting the matching Content-Type header), executes
// it, reads the full response, and classifies error status codes into a
// typed error taxonomy. Connection handling, redirects and TLS transport
// belong to net/http; this layer never reinterprets encoder or transport
// errors, it only attaches classification to HTTP status codes.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.SendMultipartFile(ctx, "/upload", "file", "1.txt")
//
// # Arbitrary Multipart Requests
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/transcribe",
//	    Body: &httpclient.MultipartBody{
//	        Parts: []formdata.Part{
//	            formdata.Text("model", "large-v3"),
//	            formdata.File("file", "audio.wav", data),
//	        },
//	    },
//	})
package httpclient
