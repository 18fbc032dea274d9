package app

import (
	"io"
	"net/http"
	"os"

	"apod-wallpaper/config"
	"apod-wallpaper/service"
	"apod-wallpaper/utils"
)

// Options controls how the services are wired
type Options struct {
	SetWallpaper bool
	Wallpaper    service.WallpaperSetter // defaults to the desktop facility
	HTTPClient   *http.Client            // defaults to a client using cfg.HTTPTimeout
	Out          io.Writer
}

// Initialize wires the services from a validated configuration.
// The returned close function releases the loaded font.
func Initialize(cfg *config.Config, opts Options) (*Pipeline, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	// Load the font before any network call so a bad FONT_PATH fails fast
	overlayOpts := service.DefaultOverlayOptions(cfg.FontPath, cfg.FontSize)
	overlayOpts.TextColor.A = cfg.TextAlpha
	overlay, err := service.NewOverlayService(overlayOpts)
	if err != nil {
		return nil, nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var setter service.WallpaperSetter
	if opts.SetWallpaper {
		setter = opts.Wallpaper
		if setter == nil {
			setter = service.DesktopWallpaper{}
		}
	}

	pipeline := &Pipeline{
		apod:     service.NewAPODService(client, cfg.BaseURL, cfg.APIKey),
		download: service.NewDownloadService(client),
		overlay:  overlay,
		publish:  service.NewPublishService(cfg.UpdatedSaveDirectory, setter),
		saveDir:  cfg.SaveDirectory,
		maxWords: cfg.MaxWordsPerLine,
		console:  utils.NewConsole(out),
	}
	return pipeline, overlay.Close, nil
}
