package service

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMedia is returned when the day's APOD is not an image (e.g. a video)
var ErrUnsupportedMedia = errors.New("unsupported media type")

// HTTPStatusError represents an unexpected HTTP status from the APOD API or the image host
type HTTPStatusError struct {
	Stage      string // "fetch", "download"
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s error: HTTP %d (URL: %s)", e.Stage, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s error: HTTP %d - %s (URL: %s)", e.Stage, e.StatusCode, e.Body, e.URL)
}

// MissingFieldError represents a required field absent from the APOD response
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("apod response is missing required field %q", e.Field)
}

// ImageError represents errors loading fonts or images, or writing the result
type ImageError struct {
	Op   string // "font", "open", "encode", "save"
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// WallpaperError represents a failure of the platform wallpaper facility
type WallpaperError struct {
	Path string
	Err  error
}

func (e *WallpaperError) Error() string {
	return fmt.Sprintf("failed to set wallpaper to %s: %v", e.Path, e.Err)
}

func (e *WallpaperError) Unwrap() error {
	return e.Err
}
