package domain

import (
	"regexp"

	"github.com/authcorp/typevault/internal/numfmt"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

const hslNumeral = `(\d+(?:\.\d+)?)`

var (
	hslAbsoluteRegex = regexp.MustCompile(`^hsl\(` + hslNumeral + `(?:deg)? ` + hslNumeral + `%? ` + hslNumeral +
		`%?(?: ?/ ?` + hslNumeral + `%?)?\)$`)
	hslLegacyRegex = regexp.MustCompile(`^hsla?\(` + hslNumeral + `(?:deg)?, ?` + hslNumeral + `%?, ?` + hslNumeral +
		`%?(?:, ?` + hslNumeral + `)?\)$`)
	hslaSpaceRegex = regexp.MustCompile(`^hsla\(` + hslNumeral + `(?:deg)? ` + hslNumeral + `%? ` + hslNumeral +
		`%?(?: ?/ ?` + hslNumeral + `%?)?\)$`)
)

// HslComponents are the components of a ColorHsl. Hue is in degrees, the
// others are percentages.
type HslComponents struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// String renders the components as hsl(Hdeg S% L% / A%).
func (c HslComponents) String() string {
	return "hsl(" + numfmt.Format(c.Hue) + "deg " + numfmt.Format(c.Saturation) + "% " +
		numfmt.Format(c.Lightness) + "% / " + numfmt.Format(c.Alpha) + "%)"
}

// Validate checks hue is in [0, 360] and the others in [0, 100].
func (c HslComponents) Validate() error {
	return checkBounds(
		bound{"hue", c.Hue, 0, 360},
		bound{"saturation", c.Saturation, 0, 100},
		bound{"lightness", c.Lightness, 0, 100},
		bound{"alpha", c.Alpha, 0, 100},
	)
}

// HslComponentsSchema names the fields of HslComponents for CopyWith.
var HslComponentsSchema = record.NewSchema("HslComponents", HslComponents.Validate,
	floatField("hue", func(c HslComponents) float64 { return c.Hue },
		func(c HslComponents, v float64) HslComponents { c.Hue = v; return c }),
	floatField("saturation", func(c HslComponents) float64 { return c.Saturation },
		func(c HslComponents, v float64) HslComponents { c.Saturation = v; return c }),
	floatField("lightness", func(c HslComponents) float64 { return c.Lightness },
		func(c HslComponents, v float64) HslComponents { c.Lightness = v; return c }),
	floatField("alpha", func(c HslComponents) float64 { return c.Alpha },
		func(c HslComponents, v float64) HslComponents { c.Alpha = v; return c }),
)

func matchHsl(re *regexp.Regexp, s string, alphaScale float64) (HslComponents, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return HslComponents{}, false
	}
	var c HslComponents
	var ok bool
	if c.Hue, ok = numfmt.Parse(m[1]); !ok {
		return HslComponents{}, false
	}
	if c.Saturation, ok = numfmt.Parse(m[2]); !ok {
		return HslComponents{}, false
	}
	if c.Lightness, ok = numfmt.Parse(m[3]); !ok {
		return HslComponents{}, false
	}
	c.Alpha = 100
	if m[4] != "" {
		if c.Alpha, ok = numfmt.Parse(m[4]); !ok {
			return HslComponents{}, false
		}
		c.Alpha *= alphaScale
	}
	return c, true
}

// parseHslCanonical reads only the space separated hsl() form, which includes
// the canonical rendering.
func parseHslCanonical(s string) (HslComponents, bool) {
	return matchHsl(hslAbsoluteRegex, s, 1)
}

// ParseHslComponents reads the space separated hsl() form, then the comma
// separated hsl()/hsla() form whose alpha is a fraction, then the space
// separated hsla() form. The first match wins.
func ParseHslComponents(s string) (HslComponents, bool) {
	if c, ok := parseHslCanonical(s); ok {
		return c, true
	}
	if c, ok := matchHsl(hslLegacyRegex, s, 100); ok {
		return c, true
	}
	return matchHsl(hslaSpaceRegex, s, 1)
}

var colorHslRules = compositeRules(ParseHslComponents, HslComponents.Validate, "invalid hsl color")

// ColorHsl is a color in canonical hsl(Hdeg S% L% / A%) form.
type ColorHsl struct {
	StringValue
}

// NewColorHsl creates a ColorHsl.
func NewColorHsl(raw string, opts ...value.Option) (*ColorHsl, error) {
	return NewColorHslPtr(&raw, opts...)
}

// NewColorHslPtr creates a ColorHsl; a nil raw means null.
func NewColorHslPtr(raw *string, opts ...value.Option) (*ColorHsl, error) {
	c := &ColorHsl{}
	return construct(c, &c.Value, raw, colorHslRules, opts)
}

// NullableColorHsl creates a nullable ColorHsl, null when raw is omitted.
func NullableColorHsl(raw ...string) (*ColorHsl, error) {
	return NewColorHslPtr(value.First(raw), value.Nullable())
}

// ImmutableColorHsl creates a ColorHsl that rejects every later write.
func ImmutableColorHsl(raw string) (*ColorHsl, error) {
	return NewColorHslPtr(&raw, value.Immutable())
}

// Components parses the current value. A null value yields all zeros,
// alpha included.
func (c *ColorHsl) Components() HslComponents {
	return components(&c.StringValue, parseHslCanonical, HslComponents{})
}

// Hue returns the hue component.
func (c *ColorHsl) Hue() float64 { return c.Components().Hue }

// Saturation returns the saturation component.
func (c *ColorHsl) Saturation() float64 { return c.Components().Saturation }

// Lightness returns the lightness component.
func (c *ColorHsl) Lightness() float64 { return c.Components().Lightness }

// Alpha returns the alpha component.
func (c *ColorHsl) Alpha() float64 { return c.Components().Alpha }

// SetHue replaces the hue; v must be in [0, 360].
func (c *ColorHsl) SetHue(v float64) error { return c.setComponent("hue", v) }

// SetSaturation replaces the saturation component; v must be in [0, 100].
func (c *ColorHsl) SetSaturation(v float64) error { return c.setComponent("saturation", v) }

// SetLightness replaces the lightness component; v must be in [0, 100].
func (c *ColorHsl) SetLightness(v float64) error { return c.setComponent("lightness", v) }

// SetAlpha replaces the alpha component; v must be in [0, 100].
func (c *ColorHsl) SetAlpha(v float64) error { return c.setComponent("alpha", v) }

func (c *ColorHsl) setComponent(name string, v float64) error {
	return writeComponent(&c.Value, HslComponentsSchema, c.Components(), name, v)
}
