package layout

import "preizo/internal/label"

const (
	fontCalibri = "Calibri"
	fontTimes   = "Times New Roman"
	fontInter   = "Inter"
)

// TextStyle is the typography of one kind of line.
type TextStyle struct {
	Font          string
	SizePt        float64
	Bold          bool
	Italic        bool
	Underline     bool
	Highlighted   bool
	Upper         bool
	SpaceBeforePt float64
	SpaceAfterPt  float64
}

// Style collects the tunables of one template variant.
type Style struct {
	Name string
	Page Page

	LogoWidths map[Logo]float64

	Spacer         TextStyle
	Department     TextStyle
	Manufacturer   TextStyle
	ProductName    TextStyle
	AdditionalInfo TextStyle
	Varieties      TextStyle
	PerPack        TextStyle
	Weigh          TextStyle
	Price          TextStyle
	Deposit        TextStyle
	UnitPrice      TextStyle
	Gebinde        TextStyle
	Packaging      TextStyle

	// ManufacturerPlaceholder keeps a blank line when there is no
	// manufacturer so the price sits at the same height on every tag.
	ManufacturerPlaceholder bool
	VarietiesText           string

	// ContainerWords are matched in order against the unit (and the pack
	// quantity when ContainerFromQuantity is set). Nil means the per-pack
	// line carries no container word.
	ContainerWords        []string
	ContainerFromQuantity bool
	DefaultContainer      string

	AllowGebinde bool
}

var (
	tagPage = Page{WidthIn: 4, HeightIn: 6, MarginIn: 0.2}
	a4Page  = Page{WidthIn: 8.27, HeightIn: 11.69, MarginIn: 0.5}

	tagLogoWidths = map[Logo]float64{
		LogoStore:     1.1,
		LogoPromotion: 1.32,
		LogoBio:       1.5,
	}
)

func body(size float64) TextStyle {
	return TextStyle{Font: fontCalibri, SizePt: size, SpaceAfterPt: 1}
}

func bold(s TextStyle) TextStyle {
	s.Bold = true
	return s
}

func tight(s TextStyle) TextStyle {
	s.SpaceAfterPt = 0
	return s
}

func highlighted(s TextStyle) TextStyle {
	s.Highlighted = true
	s.Underline = true
	return s
}

func times(s TextStyle) TextStyle {
	s.Font = fontTimes
	return s
}

// Styles is the configuration table of all template variants.
var Styles = map[label.Department]Style{
	label.DepartmentProduce: {
		Name:                    "produce",
		Page:                    tagPage,
		LogoWidths:              tagLogoWidths,
		Spacer:                  TextStyle{Font: fontCalibri, SizePt: 38, SpaceAfterPt: 12},
		Manufacturer:            tight(bold(body(30))),
		ProductName:             tight(bold(body(26))),
		AdditionalInfo:          body(18),
		PerPack:                 highlighted(body(20)),
		Weigh:                   highlighted(bold(body(28))),
		Price:                   tight(bold(times(body(65)))),
		UnitPrice:               times(body(16)),
		ManufacturerPlaceholder: true,
		ContainerWords:          []string{"Tüte", "Schale", "Stück", "Flasche"},
		DefaultContainer:        "Packung",
	},
	label.DepartmentDryGoods: {
		Name:                    "dry_goods",
		Page:                    tagPage,
		LogoWidths:              tagLogoWidths,
		Manufacturer:            tight(bold(body(36))),
		ProductName:             tight(bold(body(26))),
		Varieties:               body(20),
		PerPack:                 highlighted(body(22)),
		Price:                   tight(bold(times(body(70)))),
		UnitPrice:               times(body(18)),
		ManufacturerPlaceholder: true,
		VarietiesText:           "Verschiedene Sorten",
		// A kg product without a container hint in its name is still a
		// "Packung", which is the default anyway.
		ContainerWords:        []string{"Glas", "Dose", "Stück", "Tüte", "Schale", "Träger"},
		ContainerFromQuantity: true,
		DefaultContainer:      "Packung",
	},
	label.DepartmentBeverages: {
		Name:                    "beverages",
		Page:                    tagPage,
		LogoWidths:              tagLogoWidths,
		Manufacturer:            tight(bold(body(36))),
		ProductName:             tight(bold(body(26))),
		Varieties:               body(20),
		PerPack:                 highlighted(body(22)),
		Price:                   tight(bold(times(body(70)))),
		Deposit:                 bold(body(14)),
		Gebinde:                 bold(body(14)),
		UnitPrice:               times(body(18)),
		Packaging:               TextStyle{Font: fontCalibri, SizePt: 30, Bold: true, Underline: true, Upper: true, SpaceAfterPt: 1},
		ManufacturerPlaceholder: true,
		VarietiesText:           "Verschiedene Sorten",
		AllowGebinde:            true,
	},
	label.DepartmentUnspecified: genericStyle,
}

// genericStyle is the A4 sheet used when the department is unknown.
var genericStyle = Style{
	Name: "generic",
	Page: a4Page,
	LogoWidths: map[Logo]float64{
		LogoStore:     1.2,
		LogoPromotion: 1.35,
		LogoBio:       1.6,
	},
	Department:    TextStyle{Font: fontInter, SizePt: 35, Bold: true, Upper: true, SpaceAfterPt: 10},
	Manufacturer:  TextStyle{Font: fontInter, SizePt: 50, Upper: true, SpaceAfterPt: 20},
	ProductName:   TextStyle{Font: fontInter, SizePt: 110, Bold: true, Upper: true},
	Varieties:     TextStyle{Font: fontInter, SizePt: 30, Bold: true},
	Price:         TextStyle{Font: fontInter, SizePt: 150, Bold: true},
	Deposit:       TextStyle{Font: fontInter, SizePt: 45, Bold: true},
	Gebinde:       TextStyle{Font: fontInter, SizePt: 45, Bold: true},
	UnitPrice:     TextStyle{Font: fontInter, SizePt: 45, Bold: true},
	Packaging:     TextStyle{Font: fontInter, SizePt: 45, Bold: true, Underline: true, Upper: true},
	VarietiesText: "VERSCHIEDENE SORTEN",
	AllowGebinde:  true,
}
