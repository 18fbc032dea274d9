package app

import (
	"context"
	"fmt"
	"path/filepath"

	"apod-wallpaper/models"
	"apod-wallpaper/service"
	"apod-wallpaper/utils"
)

// RunOptions selects which record to fetch and which image variant to use
type RunOptions struct {
	Date     string // YYYY-MM-DD, empty for today
	PreferHD bool
}

// RunResult collects what each stage produced
type RunResult struct {
	APOD      *models.APOD
	Caption   models.Caption
	Asset     *models.ImageAsset
	Published *models.PublishResult
}

// Pipeline runs Fetch -> Download -> Compose -> Publish, stopping at the first failure
type Pipeline struct {
	apod     service.APODServiceInterface
	download service.DownloadServiceInterface
	overlay  service.OverlayServiceInterface
	publish  service.PublishServiceInterface
	saveDir  string
	maxWords int
	console  *utils.Console
}

// Run executes the pipeline once
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	apod, err := p.apod.FetchAPOD(ctx, opts.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch apod: %w", err)
	}
	result := &RunResult{APOD: apod}

	imageURL := apod.ImageURL(opts.PreferHD)
	p.console.Field("Title", apod.Title)
	p.console.Field("Date", apod.Date)
	p.console.Field("Explanation", apod.Explanation)
	p.console.Field("Image URL", imageURL)
	if apod.Copyright != "" {
		p.console.Field("Copyright", apod.Copyright)
	}

	fileName, err := utils.FileNameFromURL(imageURL)
	if err != nil {
		return result, err
	}

	asset, err := p.download.DownloadImage(ctx, imageURL, filepath.Join(p.saveDir, fileName))
	if err != nil {
		return result, fmt.Errorf("failed to download image: %w", err)
	}
	result.Asset = asset
	p.console.Field("Image saved to", asset.Path)

	result.Caption = models.NewCaption(apod, p.maxWords)
	final, err := p.overlay.ComposeFile(asset.Path, result.Caption)
	if err != nil {
		return result, fmt.Errorf("failed to compose caption: %w", err)
	}

	published, err := p.publish.Publish(ctx, final, fileName)
	if published != nil {
		result.Published = published
		p.console.Field("Final image saved to", published.Path)
	}
	if err != nil {
		return result, fmt.Errorf("failed to publish image: %w", err)
	}

	if published.WallpaperSet {
		p.console.Success("Wallpaper updated")
	} else {
		p.console.Note("Wallpaper left unchanged")
	}
	return result, nil
}
