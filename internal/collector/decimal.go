package collector

import (
	"errors"
	"strconv"
	"strings"
)

// ParseDecimal converts a textual numeric field to a float64, tolerating
// surrounding quotes, whitespace and locale punctuation. The separator that
// appears last is the decimal point: "1,234.56" and "1.234,56" both parse to
// 1234.56, repeated groups are thousands separators ("64,885,408"), and a
// lone comma followed by one or two digits is a decimal point ("41,23").
// Anything else raises a ParseError.
func ParseDecimal(field, raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, `"'`)
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if n := strings.Count(cleaned, ","); n > 0 {
		lastComma := strings.LastIndex(cleaned, ",")
		lastDot := strings.LastIndex(cleaned, ".")
		switch {
		case lastDot > lastComma:
			// 1,234.56: commas are thousands separators
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		case lastDot >= 0:
			// 1.234,56: dots are thousands separators, comma is the decimal
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		case n == 1 && len(cleaned)-lastComma-1 < 3:
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		default:
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	if cleaned == "" {
		return 0, &ParseError{Field: field, Value: raw, Err: errors.New("empty value")}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return v, nil
}
