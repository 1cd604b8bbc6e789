package label

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DepartmentPlaceholder  = "Abteilung nicht definiert"
	ProductNamePlaceholder = "Produktname nicht definiert"

	// PriceCategoryWeigh switches produce labels to the weigh-station line.
	PriceCategoryWeigh = "WIEGE_NR"
)

// fallbacks records which numeric fields were unreadable.
type fallbacks []string

func (f *fallbacks) decimal(field, text string) decimal.Decimal {
	if strings.TrimSpace(text) == "" {
		return decimal.Zero
	}
	d, err := ParseDecimal(text)
	if err != nil || d.IsNegative() {
		*f = append(*f, field)
		return decimal.Zero
	}
	return d
}

func (f *fallbacks) count(field, text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := parseCountOrDefault(text, -1)
	if n < 0 {
		*f = append(*f, field)
		return 0
	}
	return n
}

// Normalize turns raw field values into an Input. It never fails: numbers
// that cannot be read become zero and missing required text becomes a
// visible placeholder.
func Normalize(raw RawInput) Input {
	var fb fallbacks

	departmentName := strings.TrimSpace(raw.Department)
	if departmentName == "" {
		departmentName = DepartmentPlaceholder
	}
	productName := strings.TrimSpace(raw.ProductName)
	if productName == "" {
		productName = ProductNamePlaceholder
	}

	productType := ParseProductType(raw.ProductType)
	isBio := ParseFlag(raw.IsBio)
	if productType == ProductNormal && isBio {
		productType = ProductBio
	}

	in := Input{
		Department:      ParseDepartment(raw.Department),
		DepartmentName:  departmentName,
		ProductType:     productType,
		IsBio:           isBio || productType == ProductBio,
		Manufacturer:    strings.TrimSpace(raw.Manufacturer),
		ProductName:     productName,
		AdditionalInfo:  strings.TrimSpace(raw.AdditionalInfo),
		HasVarieties:    ParseFlag(raw.HasVarieties),
		QuantityPerPack: strings.TrimSpace(raw.QuantityPerPack),
		Unit:            strings.TrimSpace(raw.Unit),
		Price:           fb.decimal(FieldPrice, raw.Price),
		Deposit:         fb.decimal(FieldDeposit, raw.Deposit),
		PackagingType:   strings.TrimSpace(raw.PackagingType),
		GebindeSize:     fb.count(FieldGebindeSize, raw.GebindeSize),
		FillVolumeMl:    fb.decimal(FieldFillVolumeMl, raw.FillVolumeMl),
		PriceCategory:   strings.TrimSpace(raw.PriceCategory),
		WeighNumber:     strings.TrimSpace(raw.WeighNumber),
	}

	// Without both counts the per-liter math would divide by zero.
	in.IsGebinde = ParseFlag(raw.IsGebinde) && in.GebindeSize > 0 && in.FillVolumeMl.IsPositive()

	if len(fb) > 0 {
		in.Defaulted = fb
	}
	return in
}
