package label

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Longest integer and fraction part accepted for any numeric field. Shelf
// prices and volumes never come close.
const (
	maxIntegerDigits  = 9
	maxFractionDigits = 6
)

var (
	errEmptyNumber     = errors.New("empty number")
	errMalformedNumber = errors.New("malformed number")
	errNumberTooLong   = errors.New("number has too many digits")
)

// Fold returns s in Unicode case folded form, so "STÜCK" and "Stück" compare
// equal.
func Fold(s string) string {
	// cases.Caser is stateful, build one per call.
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// ParseDecimal reads a price or quantity written either way round: "4,20",
// "4.20", "4,20 €", "1.234,50" and "1,234.50" are all accepted. A separator
// that occurs once is the decimal mark; the other one groups thousands.
// Exponents and anything else that is not a plain number are rejected.
func ParseDecimal(text string) (decimal.Decimal, error) {
	s := strings.Trim(strings.TrimSpace(text), "€ \t")
	if s == "" {
		return decimal.Zero, errEmptyNumber
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}

	intPart, frac := s, ""
	if i := strings.LastIndexAny(s, ".,"); i >= 0 && strings.Count(s, s[i:i+1]) == 1 {
		intPart, frac = s[:i], s[i+1:]
	}

	digits, err := ungroup(intPart)
	if err != nil {
		return decimal.Zero, err
	}
	if !isDigits(frac) {
		return decimal.Zero, errMalformedNumber
	}
	if digits == "" && frac == "" {
		return decimal.Zero, errMalformedNumber
	}
	if len(digits) > maxIntegerDigits || len(frac) > maxFractionDigits {
		return decimal.Zero, errNumberTooLong
	}

	if digits == "" {
		digits = "0"
	}
	if frac != "" {
		digits += "." + frac
	}
	return decimal.NewFromString(sign + digits)
}

// ungroup strips thousands separators from an integer part. Groups after the
// first must have exactly three digits and only one separator kind may occur.
func ungroup(s string) (string, error) {
	sep := ""
	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		return "", errMalformedNumber
	case strings.Contains(s, "."):
		sep = "."
	case strings.Contains(s, ","):
		sep = ","
	default:
		if !isDigits(s) {
			return "", errMalformedNumber
		}
		return s, nil
	}

	groups := strings.Split(s, sep)
	for i, g := range groups {
		if !isDigits(g) || g == "" || (i == 0 && len(g) > 3) || (i > 0 && len(g) != 3) {
			return "", errMalformedNumber
		}
	}
	return strings.Join(groups, ""), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseOrDefault is the best-effort primitive behind every numeric field:
// anything that is not a non-negative number yields def.
func ParseOrDefault(text string, def decimal.Decimal) decimal.Decimal {
	d, err := ParseDecimal(text)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}

func parseCountOrDefault(text string, def int) int {
	s := strings.TrimSpace(text)
	if len(s) > maxIntegerDigits {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

var truthy = map[string]bool{
	"true": true,
	"on":   true,
	"1":    true,
	"yes":  true,
	"ja":   true,
	"x":    true,
}

// ParseFlag accepts checkbox and chat spellings of "yes".
func ParseFlag(text string) bool {
	return truthy[Fold(strings.TrimSpace(text))]
}
