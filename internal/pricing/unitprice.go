package pricing

import (
	"strings"

	"preizo/internal/label"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindUnit Kind = iota + 1
	KindSplit
	KindGebinde
)

// Result is one derived price annotation, e.g. "1kg=4,20€".
type Result struct {
	Kind   Kind
	Label  string
	Values []decimal.Decimal
	Text   string
}

type conversion struct {
	label  string
	factor decimal.Decimal
}

var thousand = decimal.NewFromInt(1000)

// Units are case folded. Everything else (Stück, Tüte, Schale, Packung,
// Träger, ...) carries no base price.
var conversions = map[string]conversion{
	"g":  {label: "1kg", factor: thousand},
	"kg": {label: "1kg", factor: decimal.NewFromInt(1)},
	"ml": {label: "1L", factor: thousand},
	"l":  {label: "1L", factor: decimal.NewFromInt(1)},
}

func lookupConversion(unit string) (conversion, bool) {
	c, ok := conversions[label.Fold(strings.TrimSpace(unit))]
	return c, ok
}

// Calculate returns at most one annotation for the label. The Gebinde price
// wins over the general unit price when allowed and valid.
func Calculate(in label.Input, allowGebinde bool) (Result, bool) {
	if allowGebinde && in.IsGebinde {
		if r, ok := Gebinde(in.Price, in.GebindeSize, in.FillVolumeMl); ok {
			return r, true
		}
	}
	return UnitPrice(in.Price, in.QuantityPerPack, in.Unit)
}

// Gebinde computes the per item and per liter price of a multi-pack.
func Gebinde(price decimal.Decimal, size int, fillVolumeMl decimal.Decimal) (Result, bool) {
	if size <= 0 || !fillVolumeMl.IsPositive() {
		return Result{}, false
	}
	count := decimal.NewFromInt(int64(size))
	totalVolume := count.Mul(fillVolumeMl)
	if !totalVolume.IsPositive() {
		return Result{}, false
	}

	perItem := price.Div(count)
	perLiter := price.Div(totalVolume).Mul(thousand)
	return Result{
		Kind:   KindGebinde,
		Label:  "1 St. / 1L",
		Values: []decimal.Decimal{perItem, perLiter},
		Text:   "1 St.=" + FormatEuro(perItem) + " / 1L=" + FormatEuro(perLiter),
	}, true
}

// UnitPrice converts price for quantity of unit into a per kg or per liter
// figure. quantity may list several pack sizes separated by "/".
func UnitPrice(price decimal.Decimal, quantity, unit string) (Result, bool) {
	conv, ok := lookupConversion(unit)
	if !ok {
		return Result{}, false
	}
	if strings.Contains(quantity, "/") {
		return splitUnitPrice(price, quantity, conv)
	}

	qty, err := label.ParseDecimal(quantity)
	if err != nil || !qty.IsPositive() {
		return Result{}, false
	}
	v := perUnit(price, qty, conv)
	return Result{
		Kind:   KindUnit,
		Label:  conv.label,
		Values: []decimal.Decimal{v},
		Text:   conv.label + "=" + FormatEuro(v),
	}, true
}

func splitUnitPrice(price decimal.Decimal, quantity string, conv conversion) (Result, bool) {
	parts := strings.Split(quantity, "/")
	values := make([]decimal.Decimal, 0, len(parts))
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		qty, err := label.ParseDecimal(part)
		if err != nil {
			return Result{}, false
		}
		v := decimal.Zero
		if qty.IsPositive() {
			v = perUnit(price, qty, conv)
		}
		values = append(values, v)
		formatted = append(formatted, FormatAmount(v))
	}

	return Result{
		Kind:   KindSplit,
		Label:  conv.label,
		Values: values,
		Text:   conv.label + "=" + strings.Join(formatted, "/") + currencySymbol,
	}, true
}

func perUnit(price, qty decimal.Decimal, conv conversion) decimal.Decimal {
	return price.Div(qty).Mul(conv.factor)
}
