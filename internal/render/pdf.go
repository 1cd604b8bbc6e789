package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"preizo/internal/layout"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType = "application/pdf"

	// lineFactor is the leading applied to a font size.
	lineFactor = 1.15
)

// PDF draws plans with the core PDF fonts, so no font files are needed.
type PDF struct {
	assets Assets
}

func NewPDF(assets Assets) *PDF {
	return &PDF{assets: assets}
}

func (p *PDF) Extension() string   { return ".pdf" }
func (p *PDF) ContentType() string { return pdfContentType }

func (p *PDF) Render(plan layout.Plan, w io.Writer) error {
	const operation = "render.PDF"

	page := plan.Page
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: page.WidthIn, Ht: page.HeightIn},
	})
	doc.SetMargins(page.MarginIn, page.MarginIn, page.MarginIn)
	doc.SetAutoPageBreak(true, page.MarginIn)
	doc.AddPage()

	// Core fonts are cp1252, which covers umlauts and the euro sign.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	contentWidth := page.WidthIn - 2*page.MarginIn

	for _, b := range plan.Blocks {
		switch b := b.(type) {
		case layout.TextBlock:
			p.text(doc, tr, b, contentWidth)
		case layout.ImageBlock:
			p.image(doc, b, page.MarginIn, contentWidth)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%s: failed to write document: %w", operation, err)
	}
	return nil
}

func (p *PDF) text(doc *gofpdf.Fpdf, tr func(string) string, t layout.TextBlock, width float64) {
	style := ""
	if t.Bold {
		style += "B"
	}
	if t.Italic {
		style += "I"
	}
	if t.Underline {
		style += "U"
	}
	size := t.SizePt
	if size <= 0 {
		size = 11
	}
	doc.SetFont(pdfFont(t.FontFamily), style, size)

	r, g, b := rgb(t.Color)
	doc.SetTextColor(r, g, b)
	if t.Highlighted {
		doc.SetFillColor(211, 211, 211)
	}

	if t.SpaceBeforePt > 0 {
		doc.Ln(points(t.SpaceBeforePt))
	}
	doc.MultiCell(width, points(size)*lineFactor, tr(t.Text), "", pdfAlign(t.Alignment), t.Highlighted)
	if t.SpaceAfterPt > 0 {
		doc.Ln(points(t.SpaceAfterPt))
	}
}

func (p *PDF) image(doc *gofpdf.Fpdf, b layout.ImageBlock, left, width float64) {
	img, ok := loadLogo(p.assets, b.Logo)
	if !ok {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: img.format, ReadDpi: false}
	name := string(b.Logo)
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))

	x := left
	switch b.Alignment {
	case layout.AlignCenter:
		x = left + (width-b.WidthIn)/2
	case layout.AlignRight:
		x = left + width - b.WidthIn
	}
	doc.ImageOptions(name, x, 0, b.WidthIn, 0, true, opts, 0, "")
}

// points converts a point size into document units (inches).
func points(pt float64) float64 {
	return pt / 72
}

func pdfFont(family string) string {
	switch family {
	case "Times New Roman", "Times":
		return "Times"
	case "Courier New", "Courier":
		return "Courier"
	default:
		return "Helvetica"
	}
}

func pdfAlign(a layout.Alignment) string {
	switch a {
	case layout.AlignLeft:
		return "L"
	case layout.AlignRight:
		return "R"
	default:
		return "C"
	}
}

func rgb(c layout.Color) (int, int, int) {
	if len(c) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
