package layout

import (
	"strings"
	"testing"

	"preizo/internal/label"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLogos = Logos{LogoStore: true, LogoPromotion: true, LogoBio: true}

func textBlocks(p Plan) []TextBlock {
	var out []TextBlock
	for _, b := range p.Blocks {
		if t, ok := b.(TextBlock); ok {
			out = append(out, t)
		}
	}
	return out
}

func images(p Plan) []ImageBlock {
	var out []ImageBlock
	for _, b := range p.Blocks {
		if img, ok := b.(ImageBlock); ok {
			out = append(out, img)
		}
	}
	return out
}

func beverage(productType, deposit string) label.Input {
	return label.Normalize(label.RawInput{
		Department:      "Getränke",
		ProductType:     productType,
		Manufacturer:    "Bauer",
		ProductName:     "Apfelsaft",
		QuantityPerPack: "1",
		Unit:            "l",
		Price:           "1,99",
		Deposit:         deposit,
		PackagingType:   "Mehrweg",
	})
}

func TestPromotionColorsEveryPriceLine(t *testing.T) {
	planner := NewPlanner(allLogos)

	promo := planner.Plan(beverage("Aktion", "0,25"))
	var priced int
	for _, tb := range textBlocks(promo) {
		if strings.Contains(tb.Text, "€") {
			priced++
			assert.Equal(t, ColorAlert, tb.Color, "line %q", tb.Text)
		} else {
			assert.Equal(t, ColorDefault, tb.Color, "line %q", tb.Text)
		}
	}
	assert.Equal(t, 3, priced, "price, deposit and unit price")

	for _, pt := range []string{"Normalpreis", "Bio"} {
		for _, tb := range textBlocks(planner.Plan(beverage(pt, "0,25"))) {
			assert.Equal(t, ColorDefault, tb.Color, "line %q", tb.Text)
		}
	}
}

func TestBeverageDepositLine(t *testing.T) {
	planner := NewPlanner(nil)

	texts := planner.Plan(beverage("Normalpreis", "0")).Texts()
	for _, txt := range texts {
		assert.NotContains(t, txt, "Pfand")
	}

	texts = planner.Plan(beverage("Normalpreis", "0,15")).Texts()
	var deposits []string
	for _, txt := range texts {
		if strings.Contains(txt, "Pfand") {
			deposits = append(deposits, txt)
		}
	}
	assert.Equal(t, []string{"Zzgl.: 0,15€ Pfand"}, deposits)
}

func TestBeverageLines(t *testing.T) {
	plan := NewPlanner(nil).Plan(beverage("Normalpreis", "0,25"))

	assert.Equal(t, "beverages", plan.Variant)
	assert.Equal(t, tagPage, plan.Page)
	assert.Equal(t, []string{
		"Bauer",
		"Apfelsaft",
		"Je 1l",
		"1,99€",
		"Zzgl.: 0,25€ Pfand",
		"1L=1,99€",
		"MEHRWEG",
	}, plan.Texts())
}

func TestContainerWord(t *testing.T) {
	dry := Styles[label.DepartmentDryGoods]

	tests := []struct {
		qty, unit string
		want      string
	}{
		{"1", "Dose", "Dose"},
		{"1", "DOSE", "Dose"},
		{"400", "g Glas", "Glas"},
		{"1 Dose", "Stk", "Dose"},
		{"500", "g", "Packung"},
		{"1", "kg", "Packung"},
	}
	for _, tt := range tests {
		in := label.Input{QuantityPerPack: tt.qty, Unit: tt.unit}
		assert.Equal(t, tt.want, containerWord(in, dry), "%s %s", tt.qty, tt.unit)
	}

	// Produce only looks at the unit.
	produce := Styles[label.DepartmentProduce]
	assert.Equal(t, "Packung", containerWord(label.Input{QuantityPerPack: "1 Tüte", Unit: "g"}, produce))
	assert.Equal(t, "Schale", containerWord(label.Input{QuantityPerPack: "500", Unit: "g Schale"}, produce))
}

func TestDryGoodsPerPackLine(t *testing.T) {
	in := label.Normalize(label.RawInput{
		Department:      "Trocken Sortiment",
		ProductName:     "Tomaten",
		HasVarieties:    "on",
		QuantityPerPack: "400",
		Unit:            "g Dose",
		Price:           "1,19",
	})
	texts := NewPlanner(nil).Plan(in).Texts()

	assert.Contains(t, texts, "Je 400g Dose Dose")
	assert.Contains(t, texts, "Verschiedene Sorten")
	// Unit "g Dose" has no conversion.
	for _, txt := range texts {
		assert.NotContains(t, txt, "1kg=")
	}
}

func TestManufacturerPlaceholder(t *testing.T) {
	in := label.Normalize(label.RawInput{Department: "Trocken Sortiment", ProductName: "Reis"})
	texts := NewPlanner(nil).Plan(in).Texts()
	require.NotEmpty(t, texts)
	assert.Equal(t, "", texts[0])
	assert.Equal(t, "Reis", texts[1])
}

func TestLogoSelection(t *testing.T) {
	tests := []struct {
		name       string
		department string
		product    string
		isBio      string
		logos      Logos
		want       Logo
	}{
		{"bio produce", "Obst & Gemüse", "Bio", "", allLogos, LogoBio},
		{"bio outside produce", "Getränke", "Bio", "", allLogos, LogoStore},
		{"promotion", "Trocken Sortiment", "Aktion", "", allLogos, LogoPromotion},
		{"normal", "Getränke", "Normalpreis", "", allLogos, LogoStore},
		{"missing bio asset", "Obst & Gemüse", "Bio", "", Logos{LogoStore: true}, LogoStore},
		{"bio checkbox on produce promotion", "Obst & Gemüse", "Aktion", "on", allLogos, LogoBio},
		{"bio checkbox on beverage promotion", "Getränke", "Aktion", "on", allLogos, LogoPromotion},
		{"bio checkbox on normal produce", "Obst & Gemüse", "Normalpreis", "true", allLogos, LogoBio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := label.Normalize(label.RawInput{Department: tt.department, ProductType: tt.product, IsBio: tt.isBio})
			imgs := images(NewPlanner(tt.logos).Plan(in))
			require.Len(t, imgs, 1)
			assert.Equal(t, tt.want, imgs[0].Logo)
			assert.Equal(t, AlignCenter, imgs[0].Alignment)
			assert.Positive(t, imgs[0].WidthIn)
		})
	}

	in := label.Normalize(label.RawInput{Department: "Getränke"})
	assert.Empty(t, images(NewPlanner(Logos{}).Plan(in)), "no assets, no image")
}

func TestGebindeSuppressesUnitPrice(t *testing.T) {
	in := label.Normalize(label.RawInput{
		Department:      "Getränke",
		ProductName:     "Wasser",
		QuantityPerPack: "6x0,5",
		Unit:            "l",
		Price:           "3,00",
		IsGebinde:       "on",
		GebindeSize:     "6",
		FillVolumeMl:    "500",
	})
	plan := NewPlanner(nil).Plan(in)

	var gebinde []TextBlock
	for _, tb := range textBlocks(plan) {
		assert.False(t, strings.HasPrefix(tb.Text, "1L="), "general unit price must be suppressed")
		if strings.HasPrefix(tb.Text, "1 St.=") {
			gebinde = append(gebinde, tb)
		}
	}
	require.Len(t, gebinde, 1)
	assert.Equal(t, "1 St.=0,50€ / 1L=1,00€", gebinde[0].Text)
	assert.True(t, gebinde[0].Bold)
}

func TestProduceWeighLine(t *testing.T) {
	in := label.Normalize(label.RawInput{
		Department:      "Obst & Gemüse",
		ProductName:     "Äpfel",
		QuantityPerPack: "1",
		Unit:            "kg",
		Price:           "2,49",
		PriceCategory:   "WIEGE_NR",
		WeighNumber:     "12",
	})
	plan := NewPlanner(nil).Plan(in)

	var weigh *TextBlock
	for _, tb := range textBlocks(plan) {
		assert.False(t, strings.HasPrefix(tb.Text, "Je "), "per-pack line replaced")
		if tb.Text == "Wiege Nr. 12" {
			tb := tb
			weigh = &tb
		}
	}
	require.NotNil(t, weigh)
	assert.True(t, weigh.Highlighted)
	assert.Contains(t, plan.Texts(), "1kg=2,49€")

	// Without a number the pack line stays.
	in.WeighNumber = ""
	assert.Contains(t, NewPlanner(nil).Plan(in).Texts(), "Je 1kg Packung")
}

func TestGenericFallback(t *testing.T) {
	in := label.Normalize(label.RawInput{
		Department:    "Kasse",
		ProductType:   "Aktion",
		Manufacturer:  "Acme",
		ProductName:   "Batterien",
		Price:         "abc",
		PackagingType: "Blister",
	})
	plan := NewPlanner(nil).Plan(in)

	assert.Equal(t, "generic", plan.Variant)
	assert.Equal(t, a4Page, plan.Page)
	assert.Equal(t, []string{"KASSE", "ACME", "BATTERIEN", "0,00€", "BLISTER"}, plan.Texts())

	blocks := textBlocks(plan)
	assert.Equal(t, ColorAlert, blocks[3].Color)
	assert.Equal(t, "Inter", blocks[3].FontFamily)
	assert.Equal(t, 150.0, blocks[3].SizePt)
}

func TestMissingDepartmentUsesPlaceholder(t *testing.T) {
	plan := NewPlanner(nil).Plan(label.Normalize(label.RawInput{}))
	texts := plan.Texts()
	require.NotEmpty(t, texts)
	assert.Equal(t, strings.ToUpper(label.DepartmentPlaceholder), texts[0])
	assert.Contains(t, texts, strings.ToUpper(label.ProductNamePlaceholder))
}
