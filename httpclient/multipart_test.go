package httpclient

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/formwire/formwire/formdata"
)

func multipartEchoServer(t *testing.T, onRequest func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			t.Errorf("ParseMediaType error: %v", err)
		}
		if mediaType != "multipart/form-data" {
			t.Errorf("Content-Type = %q, want multipart/form-data", mediaType)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm error: %v", err)
		}
		onRequest(r)
		w.WriteHeader(200)
	}))
}

func TestClient_Do_MultipartBody(t *testing.T) {
	srv := multipartEchoServer(t, func(r *http.Request) {
		if got := r.FormValue("model"); got != "large-v3" {
			t.Errorf("model field = %q, want large-v3", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile error: %v", err)
		}
		defer file.Close()

		if header.Filename != "audio.wav" {
			t.Errorf("filename = %q, want audio.wav", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "audio bytes" {
			t.Errorf("file data = %q, want audio bytes", data)
		}
	})
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/transcribe",
		Body: &MultipartBody{
			Parts: []formdata.Part{
				formdata.Text("model", "large-v3"),
				formdata.FileTyped("file", "audio.wav", "audio/wav", []byte("audio bytes")),
			},
		},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

func TestClient_SendMultipart(t *testing.T) {
	srv := multipartEchoServer(t, func(r *http.Request) {
		if got := r.FormValue("name"); got != "Alice" {
			t.Errorf("name field = %q, want Alice", got)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.SendMultipart(context.Background(), "/submit", formdata.Text("name", "Alice"))
	if err != nil {
		t.Fatalf("SendMultipart error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("StatusCode = %d, want success", resp.StatusCode)
	}
}

func TestClient_SendMultipartFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	srv := multipartEchoServer(t, func(r *http.Request) {
		file, header, err := r.FormFile("name")
		if err != nil {
			t.Fatalf("FormFile error: %v", err)
		}
		defer file.Close()

		if header.Filename != "1.txt" {
			t.Errorf("filename = %q, want 1.txt", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "hello" {
			t.Errorf("payload = %q, want hello", data)
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.SendMultipartFile(context.Background(), "/upload", "name", path)
	if err != nil {
		t.Fatalf("SendMultipartFile error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

func TestClient_SendMultipartFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	for i, p := range paths {
		if err := os.WriteFile(p, []byte{byte('a' + i)}, 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	srv := multipartEchoServer(t, func(r *http.Request) {
		for _, field := range []string{"a.txt", "b.txt"} {
			file, header, err := r.FormFile(field)
			if err != nil {
				t.Fatalf("FormFile(%s) error: %v", field, err)
			}
			if header.Filename != field {
				t.Errorf("filename = %q, want %q", header.Filename, field)
			}
			file.Close()
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	if _, err := c.SendMultipartFiles(context.Background(), "/upload", paths); err != nil {
		t.Fatalf("SendMultipartFiles error: %v", err)
	}
}

func TestClient_SendMultipartFile_Missing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.SendMultipartFile(context.Background(), "/upload", "file", filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times, want 0", hits.Load())
	}
}

func TestClient_Do_MultipartEncodingError_NotSentNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Retry: DefaultRetryConfig()})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/upload",
		Body:   &MultipartBody{Parts: []formdata.Part{formdata.Text("bad\nname", "v")}},
	})

	var encErr *formdata.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *formdata.EncodingError passed through", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times, want 0", hits.Load())
	}
}

func TestMultipartBody_FixedBoundary(t *testing.T) {
	srv := multipartEchoServer(t, func(r *http.Request) {
		_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if params["boundary"] != "fixed-boundary" {
			t.Errorf("boundary = %q, want fixed-boundary", params["boundary"])
		}
	})
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/",
		Body: &MultipartBody{
			Parts:    []formdata.Part{formdata.Text("a", "b")},
			Boundary: "fixed-boundary",
		},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
}
