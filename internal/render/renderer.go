// Package render serializes layout plans into printable files.
package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"preizo/internal/layout"
)

const (
	FormatDOCX = "docx"
	FormatPDF  = "pdf"
)

// Assets supplies logo image bytes.
type Assets interface {
	ReadLogo(logo layout.Logo) ([]byte, error)
}

type Renderer interface {
	Render(plan layout.Plan, w io.Writer) error
	// Extension includes the leading dot.
	Extension() string
	ContentType() string
}

// New returns the renderer for format ("docx" or "pdf").
func New(format string, assets Assets) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatDOCX, "":
		return NewDOCX(assets), nil
	case FormatPDF:
		return NewPDF(assets), nil
	default:
		return nil, fmt.Errorf("render.New: unknown format %q", format)
	}
}

// logoImage is a decoded logo ready for embedding.
type logoImage struct {
	data   []byte
	format string // "png" or "jpeg"
	width  int
	height int
}

// loadLogo reads and sniffs a logo. Logos are decoration: any failure makes
// the caller skip the image instead of failing the document.
func loadLogo(assets Assets, logo layout.Logo) (logoImage, bool) {
	if assets == nil {
		return logoImage{}, false
	}
	data, err := assets.ReadLogo(logo)
	if err != nil {
		return logoImage{}, false
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return logoImage{}, false
	}
	return logoImage{data: data, format: format, width: cfg.Width, height: cfg.Height}, true
}
