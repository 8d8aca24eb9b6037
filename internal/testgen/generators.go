// Package testgen provides rapid generators for the raw inputs accepted by the
// domain types, in every notation each type accepts.
package testgen

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"
)

// decimal draws a numeral in [0, max] with up to two fraction digits.
func decimal(t *rapid.T, label string, max int) string {
	whole := rapid.IntRange(0, max).Draw(t, label)
	if whole == max || !rapid.Bool().Draw(t, label+"Fraction") {
		return fmt.Sprintf("%d", whole)
	}
	return fmt.Sprintf("%d.%d", whole, rapid.IntRange(1, 99).Draw(t, label+"Digits"))
}

// EmailGen generates valid email addresses.
func EmailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9]{2,10}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io", "dev"}).Draw(t, "tld")
		return fmt.Sprintf("%s@%s.%s", local, domain, tld)
	})
}

// UUIDGen generates valid UUID v4 strings.
func UUIDGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		// xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
		hex := "0123456789abcdef"
		var b strings.Builder
		for i := 0; i < 36; i++ {
			switch i {
			case 8, 13, 18, 23:
				b.WriteByte('-')
			case 14:
				b.WriteByte('4')
			case 19:
				b.WriteByte(hex[rapid.IntRange(8, 11).Draw(t, "variant")])
			default:
				b.WriteByte(hex[rapid.IntRange(0, 15).Draw(t, "hex")])
			}
		}
		return b.String()
	})
}

// PhoneNumberGen generates valid phone numbers (E.164 format).
func PhoneNumberGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		countryCode := rapid.SampledFrom([]string{"1", "44", "49", "33", "81"}).Draw(t, "country")
		number := rapid.StringMatching(`[0-9]{10}`).Draw(t, "number")
		return fmt.Sprintf("+%s%s", countryCode, number)
	})
}

// URLGen generates valid HTTP/HTTPS URLs.
func URLGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		scheme := rapid.SampledFrom([]string{"http", "https"}).Draw(t, "scheme")
		domain := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io"}).Draw(t, "tld")
		path := rapid.StringMatching(`/[a-z]{0,10}`).Draw(t, "path")
		return fmt.Sprintf("%s://%s.%s%s", scheme, domain, tld, path)
	})
}

// HexColorGen generates hex colors with 3, 6, 7 or 8 digits in mixed case.
func HexColorGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.SampledFrom([]int{3, 6, 7, 8}).Draw(t, "digits")
		return "#" + rapid.StringMatching(fmt.Sprintf(`[0-9A-Fa-f]{%d}`, n)).Draw(t, "hex")
	})
}

// RgbColorGen generates in-range rgb()/rgba() colors in legacy and modern notation.
func RgbColorGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		r, g, b := decimal(t, "red", 255), decimal(t, "green", 255), decimal(t, "blue", 255)
		switch rapid.IntRange(0, 3).Draw(t, "notation") {
		case 0:
			return fmt.Sprintf("rgb(%s, %s, %s)", r, g, b)
		case 1:
			return fmt.Sprintf("rgba(%s,%s,%s,0.%d)", r, g, b, rapid.IntRange(0, 99).Draw(t, "alpha"))
		case 2:
			return fmt.Sprintf("rgb(%s %s %s)", r, g, b)
		default:
			return fmt.Sprintf("rgb(%s %s %s / %s%%)", r, g, b, decimal(t, "alpha", 100))
		}
	})
}

// HslColorGen generates in-range hsl()/hsla() colors in all three notations.
func HslColorGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		h, s, l := decimal(t, "hue", 360), decimal(t, "saturation", 100), decimal(t, "lightness", 100)
		switch rapid.IntRange(0, 2).Draw(t, "notation") {
		case 0:
			return fmt.Sprintf("hsl(%sdeg %s%% %s%% / %s%%)", h, s, l, decimal(t, "alpha", 100))
		case 1:
			return fmt.Sprintf("hsla(%s, %s%%, %s%%, 0.%d)", h, s, l, rapid.IntRange(0, 99).Draw(t, "alpha"))
		default:
			return fmt.Sprintf("hsla(%s %s %s)", h, s, l)
		}
	})
}

// OklchColorGen generates in-range oklch() colors mixing fraction and percent forms.
func OklchColorGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var l, c string
		if rapid.Bool().Draw(t, "lightnessPercent") {
			l = decimal(t, "lightness", 100) + "%"
		} else {
			l = fmt.Sprintf("0.%d", rapid.IntRange(0, 99).Draw(t, "lightness"))
		}
		if rapid.Bool().Draw(t, "chromaPercent") {
			c = decimal(t, "chroma", 100) + "%"
		} else {
			c = fmt.Sprintf("0.%d", rapid.IntRange(0, 99).Draw(t, "chroma"))
		}
		out := fmt.Sprintf("oklch(%s %s %sdeg", l, c, decimal(t, "hue", 360))
		if rapid.Bool().Draw(t, "alpha") {
			out += fmt.Sprintf(" / %s%%", decimal(t, "alphaValue", 100))
		}
		return out + ")"
	})
}

// DateGen generates real calendar dates with unpadded fields.
func DateGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return fmt.Sprintf("%d-%d-%d",
			rapid.IntRange(0, 9999).Draw(t, "year"),
			rapid.IntRange(1, 12).Draw(t, "month"),
			rapid.IntRange(1, 28).Draw(t, "day"))
	})
}

// TimeGen generates times of day with an optional 1 to 3 digit fraction.
func TimeGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		out := fmt.Sprintf("%d:%d:%d",
			rapid.IntRange(0, 23).Draw(t, "hour"),
			rapid.IntRange(0, 59).Draw(t, "minute"),
			rapid.IntRange(0, 59).Draw(t, "second"))
		if rapid.Bool().Draw(t, "fraction") {
			out += "." + rapid.StringMatching(`[0-9]{1,3}`).Draw(t, "millis")
		}
		return out
	})
}

// DateTimeGen generates UTC datetimes with fractions of any length.
func DateTimeGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		out := fmt.Sprintf("%sT%d:%d:%d",
			DateGen().Draw(t, "date"),
			rapid.IntRange(0, 23).Draw(t, "hour"),
			rapid.IntRange(0, 59).Draw(t, "minute"),
			rapid.IntRange(0, 59).Draw(t, "second"))
		if rapid.Bool().Draw(t, "fraction") {
			out += "." + rapid.StringMatching(`[0-9]{1,9}`).Draw(t, "fractionDigits")
		}
		return out + "Z"
	})
}

// DurationGen generates durations with a random non-empty subset of designators.
func DurationGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var date, clock strings.Builder
		for _, d := range []string{"Y", "M", "W", "D"} {
			if rapid.Bool().Draw(t, "has"+d) {
				date.WriteString(decimal(t, "date"+d, 1000) + d)
			}
		}
		for _, d := range []string{"H", "M", "S"} {
			if rapid.Bool().Draw(t, "hasT"+d) {
				clock.WriteString(decimal(t, "time"+d, 1000) + d)
			}
		}
		if date.Len() == 0 && clock.Len() == 0 {
			date.WriteString(decimal(t, "fallback", 1000) + "D")
		}
		out := "P" + date.String()
		if clock.Len() > 0 {
			out += "T" + clock.String()
		}
		return out
	})
}
