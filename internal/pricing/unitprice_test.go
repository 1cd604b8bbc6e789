package pricing

import (
	"testing"

	"preizo/internal/label"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUnitPriceKilogram(t *testing.T) {
	tests := []struct {
		price, qty string
		want       string
	}{
		{"4.20", "1", "1kg=4,20€"},
		{"3.00", "2", "1kg=1,50€"},
		{"1.00", "3", "1kg=0,33€"},
		{"5.00", "0,5", "1kg=10,00€"},
	}
	for _, tt := range tests {
		r, ok := UnitPrice(dec(tt.price), tt.qty, "kg")
		require.True(t, ok)
		assert.Equal(t, KindUnit, r.Kind)
		assert.Equal(t, tt.want, r.Text)
		assert.True(t, r.Values[0].Equal(dec(tt.price).Div(label.ParseOrDefault(tt.qty, decimal.Zero))))
	}
}

func TestUnitPriceGram(t *testing.T) {
	r, ok := UnitPrice(dec("2.49"), "500", "g")
	require.True(t, ok)
	assert.True(t, r.Values[0].Equal(dec("4.98")))
	assert.Equal(t, "1kg=4,98€", r.Text)

	r, ok = UnitPrice(dec("1.29"), "200", "G")
	require.True(t, ok)
	assert.Equal(t, "1kg=6,45€", r.Text)
}

func TestUnitPriceLiter(t *testing.T) {
	r, ok := UnitPrice(dec("0.99"), "330", "ml")
	require.True(t, ok)
	assert.Equal(t, "1L=3,00€", r.Text)

	r, ok = UnitPrice(dec("1.99"), "1,5", "l")
	require.True(t, ok)
	assert.Equal(t, "1L=1,33€", r.Text)
}

func TestUnitPriceSplit(t *testing.T) {
	r, ok := UnitPrice(dec("4.00"), "250/500", "g")
	require.True(t, ok)
	assert.Equal(t, KindSplit, r.Kind)
	assert.Equal(t, "1kg=16,00/8,00€", r.Text)
	require.Len(t, r.Values, 2)
	assert.True(t, r.Values[0].Equal(dec("16")))
	assert.True(t, r.Values[1].Equal(dec("8")))
}

func TestUnitPriceSplitEdgeCases(t *testing.T) {
	r, ok := UnitPrice(dec("4.00"), "250/0", "g")
	require.True(t, ok)
	assert.Equal(t, "1kg=16,00/0,00€", r.Text)

	_, ok = UnitPrice(dec("4.00"), "250/abc", "g")
	assert.False(t, ok)
}

func TestUnitPriceOmitted(t *testing.T) {
	tests := []struct {
		name, qty, unit string
	}{
		{"no conversion for Stück", "1", "Stück"},
		{"empty unit", "1", ""},
		{"zero quantity", "0", "kg"},
		{"unparseable quantity", "viel", "g"},
		{"empty quantity", "", "g"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := UnitPrice(dec("1.00"), tt.qty, tt.unit)
			assert.False(t, ok)
		})
	}
}

func TestGebinde(t *testing.T) {
	r, ok := Gebinde(dec("3.00"), 6, dec("500"))
	require.True(t, ok)
	assert.Equal(t, KindGebinde, r.Kind)
	assert.True(t, r.Values[0].Equal(dec("0.5")))
	assert.True(t, r.Values[1].Equal(dec("1")))
	assert.Equal(t, "1 St.=0,50€ / 1L=1,00€", r.Text)

	_, ok = Gebinde(dec("3.00"), 0, dec("500"))
	assert.False(t, ok)
	_, ok = Gebinde(dec("3.00"), 6, decimal.Zero)
	assert.False(t, ok)
}

func TestCalculateGebindeWins(t *testing.T) {
	in := label.Input{
		Price:           dec("3.00"),
		QuantityPerPack: "3",
		Unit:            "l",
		IsGebinde:       true,
		GebindeSize:     6,
		FillVolumeMl:    dec("500"),
	}

	r, ok := Calculate(in, true)
	require.True(t, ok)
	assert.Equal(t, KindGebinde, r.Kind)

	r, ok = Calculate(in, false)
	require.True(t, ok)
	assert.Equal(t, KindUnit, r.Kind)
	assert.Equal(t, "1L=1,00€", r.Text)
}

func TestCalculateInvalidGebindeFallsThrough(t *testing.T) {
	in := label.Input{
		Price:           dec("3.00"),
		QuantityPerPack: "3",
		Unit:            "l",
		IsGebinde:       true,
		GebindeSize:     0,
		FillVolumeMl:    dec("500"),
	}

	r, ok := Calculate(in, true)
	require.True(t, ok)
	assert.Equal(t, KindUnit, r.Kind)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0,00", FormatAmount(decimal.Zero))
	assert.Equal(t, "4,20€", FormatEuro(dec("4.2")))
	assert.Equal(t, "1234,50€", FormatEuro(dec("1234.5")))
	assert.Equal(t, "0,34€", FormatEuro(dec("0.335")))
	assert.Equal(t, "Zzgl.: 0,15€ Pfand", FormatDeposit(dec("0.15")))
}
