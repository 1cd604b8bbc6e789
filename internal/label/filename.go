package label

import "strings"

// DefaultBaseName is used when no part of the filename is known.
const DefaultBaseName = "preisblatt"

// BaseFilename joins manufacturer, product name and pack size with single
// spaces. Slashes of split quantities ("250/500") become dashes. The product
// name placeholder never ends up in a filename.
func (in Input) BaseFilename() string {
	productName := in.ProductName
	if productName == ProductNamePlaceholder {
		productName = ""
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{in.Manufacturer, productName, in.QuantityPerPack + in.Unit} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	base := strings.ReplaceAll(strings.Join(parts, " "), "/", "-")
	if base == "" {
		return DefaultBaseName
	}
	return base
}

// Filename appends ext (".docx", ".pdf") to the base name.
func (in Input) Filename(ext string) string {
	return in.BaseFilename() + ext
}
