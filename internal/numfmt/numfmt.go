// Package numfmt renders float components of canonical strings.
package numfmt

import "strconv"

// precision is the number of significant digits kept when rendering. It hides
// binary noise such as 0.1/100*0.4 = 0.00040000000000000002.
const precision = 14

// Format renders f as a plain decimal with at most 14 significant digits and no
// trailing zeros: 100 -> "100", 12.50 -> "12.5", 0.1/100*0.4 -> "0.0004".
func Format(f float64) string {
	if f == 0 {
		return "0"
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', precision, 64), 64)
	if err != nil {
		rounded = f
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Parse reads a decimal numeral. Numerals such as ".5" and "5." are accepted.
func Parse(s string) (float64, bool) {
	if s == "" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
