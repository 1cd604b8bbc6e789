package label

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// fieldAliases maps the German labels used in chat messages onto the
// contract field names. Keys are case folded (ß folds to ss).
var fieldAliases = map[string]string{
	"abteilung":      FieldDepartment,
	"art":            FieldProductType,
	"preisart":       FieldProductType,
	"typ":            FieldProductType,
	"preistyp":       FieldProductType,
	"hersteller":     FieldManufacturer,
	"marke":          FieldManufacturer,
	"produkt":        FieldProductName,
	"produktname":    FieldProductName,
	"sorten":         FieldHasVarieties,
	"zusatz":         FieldAdditionalInfo,
	"zusatzinfo":     FieldAdditionalInfo,
	"menge":          FieldQuantityPerPack,
	"inhalt":         FieldQuantityPerPack,
	"einheit":        FieldUnit,
	"preis":          FieldPrice,
	"pfand":          FieldDeposit,
	"verpackung":     FieldPackagingType,
	"bio":            FieldIsBio,
	"preiskategorie": FieldPriceCategory,
	"wiege nr":       FieldWeighNumber,
	"wiege-nr":       FieldWeighNumber,
	"wiegenummer":    FieldWeighNumber,
	"gebinde":        FieldIsGebinde,
	"gebindegrösse":  FieldGebindeSize,
	"gebinde grösse": FieldGebindeSize,
	"flaschen":       FieldGebindeSize,
	"füllmenge":      FieldFillVolumeMl,
	"füllmenge ml":   FieldFillVolumeMl,
	"inhalt ml":      FieldFillVolumeMl,

	// Contract names map onto themselves.
	FieldDepartment:      FieldDepartment,
	FieldProductType:     FieldProductType,
	FieldManufacturer:    FieldManufacturer,
	FieldProductName:     FieldProductName,
	FieldHasVarieties:    FieldHasVarieties,
	FieldAdditionalInfo:  FieldAdditionalInfo,
	FieldQuantityPerPack: FieldQuantityPerPack,
	FieldUnit:            FieldUnit,
	FieldPrice:           FieldPrice,
	FieldDeposit:         FieldDeposit,
	FieldPackagingType:   FieldPackagingType,
	FieldIsBio:           FieldIsBio,
	FieldPriceCategory:   FieldPriceCategory,
	FieldWeighNumber:     FieldWeighNumber,
	FieldIsGebinde:       FieldIsGebinde,
	FieldGebindeSize:     FieldGebindeSize,
	FieldFillVolumeMl:    FieldFillVolumeMl,
}

// CanonicalField resolves a field name or one of its German aliases.
func CanonicalField(key string) (string, bool) {
	k := Fold(strings.Trim(strings.TrimSpace(key), ".:"))
	field, ok := fieldAliases[k]
	return field, ok
}

// RawFromMap decodes a flat field map keyed by contract names. Unknown keys
// are ignored.
func RawFromMap(values map[string]string) (RawInput, error) {
	var raw RawInput
	if err := mapstructure.Decode(values, &raw); err != nil {
		return RawInput{}, fmt.Errorf("label.RawFromMap: %w", err)
	}
	return raw, nil
}

// RawFromValues decodes a JSON style field map. Booleans and numbers are
// turned into their string form and keys may be German aliases. Unknown keys
// are ignored.
func RawFromValues(values map[string]any) (RawInput, error) {
	const operation = "label.RawFromValues"

	fields := make(map[string]any, len(values))
	for k, v := range values {
		if field, ok := CanonicalField(k); ok {
			fields[field] = v
		}
	}

	var raw RawInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return RawInput{}, fmt.Errorf("%s: %w", operation, err)
	}
	if err := dec.Decode(fields); err != nil {
		return RawInput{}, fmt.Errorf("%s: %w", operation, err)
	}
	return raw, nil
}

// Map is the inverse of RawFromMap; empty fields are left out.
func (r RawInput) Map() map[string]string {
	var fields map[string]any
	out := make(map[string]string)
	if err := mapstructure.Decode(r, &fields); err != nil {
		return out
	}
	for k, v := range fields {
		if s, ok := v.(string); ok && s != "" {
			out[k] = s
		}
	}
	return out
}
