package service

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"apod-wallpaper/models"
	"apod-wallpaper/utils"
)

// PublishService saves composed images and applies them as the desktop background
// Implements PublishServiceInterface
type PublishService struct {
	outputDir string
	wallpaper WallpaperSetter // nil skips the wallpaper step
}

// NewPublishService creates a new PublishService instance.
// Pass a nil setter to only write the image.
func NewPublishService(outputDir string, setter WallpaperSetter) *PublishService {
	return &PublishService{
		outputDir: outputDir,
		wallpaper: setter,
	}
}

// Ensure PublishService implements PublishServiceInterface
var _ PublishServiceInterface = (*PublishService)(nil)

// Publish writes img as updated_<srcFileName>.png under the output directory and
// sets it as the wallpaper. Wallpaper failures are returned as *WallpaperError.
func (p *PublishService) Publish(ctx context.Context, img image.Image, srcFileName string) (*models.PublishResult, error) {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(p.outputDir, utils.PublishedFileName(srcFileName)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := imaging.Save(img, path); err != nil {
		return nil, &ImageError{Op: "save", Path: path, Err: err}
	}
	log.Printf("✓ Final image saved: %s", path)

	result := &models.PublishResult{Path: path}
	if p.wallpaper == nil {
		log.Printf("⏭️  Skipping wallpaper update")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := p.wallpaper.SetFromFile(path); err != nil {
		return result, &WallpaperError{Path: path, Err: err}
	}

	log.Printf("🖼️  Wallpaper set: %s", path)
	result.WallpaperSet = true
	return result, nil
}
