package formdata

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuilder_AddFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	body, err := NewBuilder().AddFile("name", path).Finish()
	if err != nil {
		t.Fatalf("Finish error: %v", err)
	}

	mr := multipart.NewReader(bytes.NewReader(body.Bytes), body.Boundary)
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart error: %v", err)
	}
	if part.FormName() != "name" {
		t.Errorf("field name = %q, want name", part.FormName())
	}
	if part.FileName() != "1.txt" {
		t.Errorf("filename = %q, want 1.txt", part.FileName())
	}
	if ct := part.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	data, _ := io.ReadAll(part)
	if string(data) != "hello" {
		t.Errorf("payload = %q, want hello", data)
	}
}

func TestBuilder_MissingFile(t *testing.T) {
	_, err := NewBuilder().AddFile("name", filepath.Join(t.TempDir(), "nope.txt")).Finish()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestBuilder_ErrorShortCircuits(t *testing.T) {
	b := NewBuilder().
		AddFile("f", filepath.Join(t.TempDir(), "missing.bin")).
		AddText("later", "value")

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after failed add", b.Len())
	}
	if _, err := b.Finish(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Finish err = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestBuilder_Mixed(t *testing.T) {
	body, err := NewBuilder(WithBoundary("bnd")).
		AddText("model", "large-v3").
		AddFileBytes("file", "audio.wav", "audio/wav", []byte("wav data")).
		AddReader("extra", "notes.txt", "", strings.NewReader("from reader")).
		Finish()
	if err != nil {
		t.Fatalf("Finish error: %v", err)
	}

	mr := multipart.NewReader(bytes.NewReader(body.Bytes), "bnd")
	names := []string{"model", "file", "extra"}
	for _, want := range names {
		part, err := mr.NextPart()
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		if part.FormName() != want {
			t.Errorf("part = %q, want %q", part.FormName(), want)
		}
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("expected EOF after three parts, got %v", err)
	}
}

func TestDetectContentType(t *testing.T) {
	if ct := DetectContentType("logo.png", nil); ct != "image/png" {
		t.Errorf("DetectContentType(.png) = %q, want image/png", ct)
	}

	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	if ct := DetectContentType("noext", png); ct != "image/png" {
		t.Errorf("sniffed content type = %q, want image/png", ct)
	}

	if ct := DetectContentType("x.unknownext", []byte{0x00, 0x01}); ct != "application/octet-stream" {
		t.Errorf("fallback content type = %q, want application/octet-stream", ct)
	}
}
