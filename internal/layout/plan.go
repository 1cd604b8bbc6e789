// Package layout turns a normalized label input into an ordered list of
// styled blocks. It knows nothing about file formats; see package render.
package layout

type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// Color is an RGB hex triple; the empty string means the document default.
type Color string

const (
	ColorDefault Color = ""
	ColorAlert   Color = "FF0000"
)

// Logo is the logical name of a logo asset.
type Logo string

const (
	LogoStore     Logo = "store"
	LogoPromotion Logo = "promotion"
	LogoBio       Logo = "bio"
)

// Page geometry in inches.
type Page struct {
	WidthIn  float64
	HeightIn float64
	MarginIn float64
}

// Block is either a TextBlock or an ImageBlock.
type Block interface {
	block()
}

type TextBlock struct {
	Text          string
	FontFamily    string
	SizePt        float64
	Bold          bool
	Italic        bool
	Underline     bool
	Highlighted   bool
	Color         Color
	Alignment     Alignment
	SpaceBeforePt float64
	SpaceAfterPt  float64
}

type ImageBlock struct {
	Logo      Logo
	WidthIn   float64
	Alignment Alignment
}

func (TextBlock) block()  {}
func (ImageBlock) block() {}

// Plan is the renderer-facing description of one price tag.
type Plan struct {
	Variant string
	Page    Page
	Blocks  []Block
}

// Texts returns the text of every TextBlock in order.
func (p Plan) Texts() []string {
	out := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		if t, ok := b.(TextBlock); ok {
			out = append(out, t.Text)
		}
	}
	return out
}
