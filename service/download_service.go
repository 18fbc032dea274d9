package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"apod-wallpaper/models"
)

// downloadChunkSize is the buffer used to stream the image body to disk
const downloadChunkSize = 8192

// DownloadService handles streaming images to local storage
// Implements DownloadServiceInterface
type DownloadService struct {
	client *http.Client
}

// NewDownloadService creates a new DownloadService instance
func NewDownloadService(client *http.Client) *DownloadService {
	if client == nil {
		client = http.DefaultClient
	}
	return &DownloadService{
		client: client,
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// DownloadImage streams the body at url into destPath, overwriting any existing file.
// A partially written file is left in place if the copy fails.
func (ds *DownloadService) DownloadImage(ctx context.Context, url string, destPath string) (asset *models.ImageAsset, err error) {
	log.Printf("📥 Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := ds.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{
			Stage:      "download",
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			asset = nil
			err = fmt.Errorf("failed to close %s: %w", destPath, cerr)
		}
	}()

	var written int64
	buf := make([]byte, downloadChunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				return nil, fmt.Errorf("failed to write image to %s: %w", destPath, werr)
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("failed to read image body: %w", rerr)
		}
	}

	log.Printf("✓ Image saved: %s (%d bytes)", destPath, written)
	return &models.ImageAsset{
		URL:   url,
		Path:  destPath,
		Bytes: written,
	}, nil
}
