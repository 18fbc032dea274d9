package service

import (
	"context"
	"image"

	"apod-wallpaper/models"
)

// APODServiceInterface defines the contract for fetching the daily record
type APODServiceInterface interface {
	// FetchAPOD returns the record for date (YYYY-MM-DD), or today's when date is empty
	FetchAPOD(ctx context.Context, date string) (*models.APOD, error)
}

// DownloadServiceInterface defines the contract for downloading images
type DownloadServiceInterface interface {
	DownloadImage(ctx context.Context, url string, destPath string) (*models.ImageAsset, error)
}

// OverlayServiceInterface defines the contract for burning the caption into an image
type OverlayServiceInterface interface {
	ComposeFile(path string, caption models.Caption) (image.Image, error)
}

// PublishServiceInterface defines the contract for saving and applying the result
type PublishServiceInterface interface {
	Publish(ctx context.Context, img image.Image, srcFileName string) (*models.PublishResult, error)
}

// WallpaperSetter sets the desktop background from an image file
type WallpaperSetter interface {
	SetFromFile(path string) error
}
