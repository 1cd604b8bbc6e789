package label

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"Abteilung", FieldDepartment},
		{"Art:", FieldProductType},
		{"PREIS", FieldPrice},
		{"Wiege Nr.", FieldWeighNumber},
		{"Gebindegröße", FieldGebindeSize},
		{"inhalt ml", FieldFillVolumeMl},
		{"quantity_per_pack", FieldQuantityPerPack},
	}
	for _, tt := range tests {
		got, ok := CanonicalField(tt.key)
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got)
	}

	_, ok := CanonicalField("farbe")
	assert.False(t, ok)
}

func TestRawFromMap(t *testing.T) {
	raw, err := RawFromMap(map[string]string{
		FieldDepartment:   "Getränke",
		FieldPrice:        "1,99",
		FieldFillVolumeMl: "500",
		"unbekannt":       "x",
	})
	require.NoError(t, err)

	assert.Equal(t, "Getränke", raw.Department)
	assert.Equal(t, "1,99", raw.Price)
	assert.Equal(t, "500", raw.FillVolumeMl)

	assert.Equal(t, map[string]string{
		FieldDepartment:   "Getränke",
		FieldPrice:        "1,99",
		FieldFillVolumeMl: "500",
	}, raw.Map())
}

func TestRawFromValues(t *testing.T) {
	raw, err := RawFromValues(map[string]any{
		FieldDepartment:   "Getränke",
		FieldHasVarieties: true,
		FieldIsBio:        false,
		FieldPrice:        2.5,
		FieldGebindeSize:  float64(6),
		"Pfand":           "0,25",
		FieldUnit:         nil,
		"unbekannt":       []any{"x"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Getränke", raw.Department)
	assert.Equal(t, "2.5", raw.Price)
	assert.Equal(t, "6", raw.GebindeSize)
	assert.Equal(t, "0,25", raw.Deposit)
	assert.Empty(t, raw.Unit)

	in := Normalize(raw)
	assert.True(t, in.HasVarieties)
	assert.False(t, in.IsBio)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 6, in.GebindeSize)
	assert.Empty(t, in.Defaulted)
}

func TestRawFromValuesRejectsNested(t *testing.T) {
	_, err := RawFromValues(map[string]any{FieldPrice: map[string]any{"amount": 2}})
	assert.Error(t, err)
}
