package layout

import (
	"strings"

	"preizo/internal/label"
	"preizo/internal/pricing"
)

// scope is what a rule sees while a plan is built.
type scope struct {
	in        label.Input
	style     Style
	logos     LogoSet
	unitPrice pricing.Result
	hasPrice  bool
}

// rule emits zero or more blocks for one line of the tag.
type rule func(s scope) []Block

// priceColor is the alert color for promotions, default otherwise.
func (s scope) priceColor() Color {
	if s.in.IsPromotion() {
		return ColorAlert
	}
	return ColorDefault
}

func text(st TextStyle, txt string, color Color) Block {
	if st.Upper {
		txt = strings.ToUpper(txt)
	}
	return TextBlock{
		Text:          txt,
		FontFamily:    st.Font,
		SizePt:        st.SizePt,
		Bold:          st.Bold,
		Italic:        st.Italic,
		Underline:     st.Underline,
		Highlighted:   st.Highlighted,
		Color:         color,
		Alignment:     AlignCenter,
		SpaceBeforePt: st.SpaceBeforePt,
		SpaceAfterPt:  st.SpaceAfterPt,
	}
}

func one(b Block) []Block { return []Block{b} }

func logoRule(s scope) []Block {
	logo, ok := selectLogo(s.in, s.logos)
	if !ok {
		return nil
	}
	return one(ImageBlock{Logo: logo, WidthIn: s.style.LogoWidths[logo], Alignment: AlignCenter})
}

// selectLogo picks the first available of bio (produce only), promotion and
// the store logo. Bio produce gets the bio logo even when on promotion.
func selectLogo(in label.Input, logos LogoSet) (Logo, bool) {
	switch {
	case in.Department == label.DepartmentProduce && in.IsBio && logos.Has(LogoBio):
		return LogoBio, true
	case in.ProductType == label.ProductPromotion && logos.Has(LogoPromotion):
		return LogoPromotion, true
	case logos.Has(LogoStore):
		return LogoStore, true
	}
	return "", false
}

func spacerRule(s scope) []Block {
	return one(text(s.style.Spacer, "", ColorDefault))
}

func departmentRule(s scope) []Block {
	return one(text(s.style.Department, s.in.DepartmentName, ColorDefault))
}

func manufacturerRule(s scope) []Block {
	if s.in.Manufacturer == "" {
		if !s.style.ManufacturerPlaceholder {
			return nil
		}
		return one(text(s.style.Manufacturer, "", ColorDefault))
	}
	return one(text(s.style.Manufacturer, s.in.Manufacturer, ColorDefault))
}

func productNameRule(s scope) []Block {
	return one(text(s.style.ProductName, s.in.ProductName, ColorDefault))
}

func additionalInfoRule(s scope) []Block {
	if s.in.AdditionalInfo == "" {
		return nil
	}
	return one(text(s.style.AdditionalInfo, s.in.AdditionalInfo, ColorDefault))
}

func varietiesRule(s scope) []Block {
	if !s.in.HasVarieties {
		return nil
	}
	return one(text(s.style.Varieties, s.style.VarietiesText, ColorDefault))
}

func perPackRule(s scope) []Block {
	line := "Je " + s.in.QuantityPerPack + s.in.Unit
	if s.style.ContainerWords != nil {
		line += " " + containerWord(s.in, s.style)
	}
	return one(text(s.style.PerPack, strings.TrimSpace(line), ColorDefault))
}

// containerWord names the packaging from keywords in the unit text.
func containerWord(in label.Input, st Style) string {
	for _, word := range st.ContainerWords {
		if label.ContainsFold(in.Unit, word) {
			return word
		}
		if st.ContainerFromQuantity && label.ContainsFold(in.QuantityPerPack, word) {
			return word
		}
	}
	return st.DefaultContainer
}

// weighOrPerPackRule prints the scale number instead of the pack size for
// goods that are weighed at the station.
func weighOrPerPackRule(s scope) []Block {
	if label.Fold(s.in.PriceCategory) == label.Fold(label.PriceCategoryWeigh) && s.in.WeighNumber != "" {
		return one(text(s.style.Weigh, "Wiege Nr. "+s.in.WeighNumber, ColorDefault))
	}
	return perPackRule(s)
}

func priceRule(s scope) []Block {
	return one(text(s.style.Price, pricing.FormatEuro(s.in.Price), s.priceColor()))
}

func depositRule(s scope) []Block {
	if !s.in.Deposit.IsPositive() {
		return nil
	}
	return one(text(s.style.Deposit, pricing.FormatDeposit(s.in.Deposit), s.priceColor()))
}

func unitPriceRule(s scope) []Block {
	if !s.hasPrice {
		return nil
	}
	st := s.style.UnitPrice
	if s.unitPrice.Kind == pricing.KindGebinde {
		st = s.style.Gebinde
	}
	return one(text(st, s.unitPrice.Text, s.priceColor()))
}

func packagingRule(s scope) []Block {
	if s.in.PackagingType == "" {
		return nil
	}
	return one(text(s.style.Packaging, s.in.PackagingType, ColorDefault))
}
