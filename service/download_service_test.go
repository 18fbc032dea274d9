package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadImage_Success(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB, 0xCD, 0xEF}, 10000) // larger than one chunk
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "raw", "nebula.jpg")
	ds := NewDownloadService(server.Client())

	asset, err := ds.DownloadImage(context.Background(), server.URL+"/nebula.jpg", dest)
	if err != nil {
		t.Fatalf("DownloadImage() error = %v", err)
	}
	if asset.Path != dest {
		t.Errorf("Path = %q, want %q", asset.Path, dest)
	}
	if asset.Bytes != int64(len(payload)) {
		t.Errorf("Bytes = %d, want %d", asset.Bytes, len(payload))
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("failed to read downloaded file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("downloaded content differs from served content")
	}
}

func TestDownloadImage_Overwrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "a.jpg")
	if err := os.WriteFile(dest, []byte("old content that is longer"), 0644); err != nil {
		t.Fatal(err)
	}

	ds := NewDownloadService(server.Client())
	if _, err := ds.DownloadImage(context.Background(), server.URL+"/a.jpg", dest); err != nil {
		t.Fatalf("DownloadImage() error = %v", err)
	}

	got, _ := os.ReadFile(dest)
	if string(got) != "new" {
		t.Errorf("file content = %q, want %q", got, "new")
	}
}

func TestDownloadImage_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.jpg")
	ds := NewDownloadService(server.Client())

	_, err := ds.DownloadImage(context.Background(), server.URL+"/missing.jpg", dest)
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("DownloadImage() error = %v, want *HTTPStatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Stage != "download" {
		t.Errorf("got %+v, want 404 download error", statusErr)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("no file should be created on error status, stat err = %v", err)
	}
}

func TestDownloadImage_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ds := NewDownloadService(server.Client())
	if _, err := ds.DownloadImage(ctx, server.URL+"/a.jpg", filepath.Join(t.TempDir(), "a.jpg")); err == nil {
		t.Error("DownloadImage() should fail with a cancelled context")
	}
}
