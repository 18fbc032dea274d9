package service

import (
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"apod-wallpaper/models"
)

const (
	// Text placement, top-left of the ascender of the first line
	defaultAnchorX = 0
	defaultAnchorY = 10
	// Extra pixels between lines
	defaultLineSpacing = 4
	fontDPI            = 72
)

// DefaultTextColor is a near-transparent white, giving a watermark look
var DefaultTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 70}

// OverlayOptions configures caption rendering
type OverlayOptions struct {
	FontPath    string
	FontSize    float64
	TextColor   color.NRGBA
	Anchor      image.Point
	LineSpacing int
}

// DefaultOverlayOptions returns the watermark settings for the given font
func DefaultOverlayOptions(fontPath string, fontSize float64) OverlayOptions {
	return OverlayOptions{
		FontPath:    fontPath,
		FontSize:    fontSize,
		TextColor:   DefaultTextColor,
		Anchor:      image.Pt(defaultAnchorX, defaultAnchorY),
		LineSpacing: defaultLineSpacing,
	}
}

// OverlayService burns captions into images
// Implements OverlayServiceInterface
type OverlayService struct {
	opts OverlayOptions
	face font.Face
}

// NewOverlayService loads the configured font. There is no fallback font:
// a missing or unparsable font file is an error.
func NewOverlayService(opts OverlayOptions) (*OverlayService, error) {
	data, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, &ImageError{Op: "font", Path: opts.FontPath, Err: err}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &ImageError{Op: "font", Path: opts.FontPath, Err: err}
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &ImageError{Op: "font", Path: opts.FontPath, Err: err}
	}

	log.Printf("🔤 Font loaded: %s (size=%.1f)", opts.FontPath, opts.FontSize)
	return &OverlayService{
		opts: opts,
		face: face,
	}, nil
}

// Ensure OverlayService implements OverlayServiceInterface
var _ OverlayServiceInterface = (*OverlayService)(nil)

// Close releases the font face
func (s *OverlayService) Close() error {
	return s.face.Close()
}

// RenderTextLayer draws text onto a fully transparent layer of the given size.
// Lines are separated by '\n' and are not wrapped to the layer width.
func (s *OverlayService) RenderTextLayer(width, height int, text string) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, width, height))

	metrics := s.face.Metrics()
	lineHeight := metrics.Height + fixed.I(s.opts.LineSpacing)

	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(s.opts.TextColor),
		Face: s.face,
	}

	baseline := fixed.I(s.opts.Anchor.Y) + metrics.Ascent
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.Point26_6{X: fixed.I(s.opts.Anchor.X), Y: baseline}
		d.DrawString(line)
		baseline += lineHeight
	}
	return layer
}

// Compose alpha-composites the caption layer over src.
// The result has the same dimensions as src.
func (s *OverlayService) Compose(src image.Image, caption models.Caption) *image.NRGBA {
	base := imaging.Clone(src)
	bounds := base.Bounds()

	layer := s.RenderTextLayer(bounds.Dx(), bounds.Dy(), caption.Text())
	return imaging.Overlay(base, layer, image.Pt(0, 0), 1.0)
}

// ComposeFile opens the image at path and burns the caption into it
func (s *OverlayService) ComposeFile(path string, caption models.Caption) (image.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, &ImageError{Op: "open", Path: path, Err: err}
	}

	log.Printf("📸 Image decoded: %s, bounds=%v", path, src.Bounds())
	final := s.Compose(src, caption)
	log.Printf("✓ Caption composed: %d lines", len(caption.Lines)+3)
	return final, nil
}
