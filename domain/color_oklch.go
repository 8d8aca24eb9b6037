package domain

import (
	"regexp"

	"github.com/authcorp/typevault/internal/numfmt"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

const oklchNumeral = `(\d+|\d*\.\d+)`

var oklchRegex = regexp.MustCompile(`^oklch\(` +
	oklchNumeral + `(%)? ` + oklchNumeral + `(%)? ` + oklchNumeral + `(?:deg)?` +
	`(?: ?/ ?` + oklchNumeral + `(%)?)?\)$`)

// maxPercentChroma is the chroma that 100% maps to.
const maxPercentChroma = 0.4

// OklchComponents are the components of a ColorOklch. Lightness and alpha are
// percentages, chroma is absolute and hue is in degrees.
type OklchComponents struct {
	Lightness float64
	Chroma    float64
	Hue       float64
	Alpha     float64
}

var defaultOklchComponents = OklchComponents{Alpha: 100}

// String renders the components as oklch(L% C Hdeg / A%).
func (c OklchComponents) String() string {
	return "oklch(" + numfmt.Format(c.Lightness) + "% " + numfmt.Format(c.Chroma) + " " +
		numfmt.Format(c.Hue) + "deg / " + numfmt.Format(c.Alpha) + "%)"
}

// Validate checks lightness and alpha are in [0, 100], chroma in [0, 1] and
// hue in [0, 360].
func (c OklchComponents) Validate() error {
	return checkBounds(
		bound{"lightness", c.Lightness, 0, 100},
		bound{"chroma", c.Chroma, 0, 1},
		bound{"hue", c.Hue, 0, 360},
		bound{"alpha", c.Alpha, 0, 100},
	)
}

// OklchComponentsSchema names the fields of OklchComponents for CopyWith.
var OklchComponentsSchema = record.NewSchema("OklchComponents", OklchComponents.Validate,
	floatField("lightness", func(c OklchComponents) float64 { return c.Lightness },
		func(c OklchComponents, v float64) OklchComponents { c.Lightness = v; return c }),
	floatField("chroma", func(c OklchComponents) float64 { return c.Chroma },
		func(c OklchComponents, v float64) OklchComponents { c.Chroma = v; return c }),
	floatField("hue", func(c OklchComponents) float64 { return c.Hue },
		func(c OklchComponents, v float64) OklchComponents { c.Hue = v; return c }),
	floatField("alpha", func(c OklchComponents) float64 { return c.Alpha },
		func(c OklchComponents, v float64) OklchComponents { c.Alpha = v; return c }),
)

// ParseOklchComponents reads oklch(L C H [/ A]). Lightness and alpha given as
// fractions are scaled to percentages, a percentage chroma is mapped onto
// [0, 0.4] and a missing alpha is 100.
func ParseOklchComponents(s string) (OklchComponents, bool) {
	m := oklchRegex.FindStringSubmatch(s)
	if m == nil {
		return OklchComponents{}, false
	}
	var c OklchComponents
	var ok bool
	if c.Lightness, ok = numfmt.Parse(m[1]); !ok {
		return OklchComponents{}, false
	}
	if m[2] == "" {
		c.Lightness *= 100
	}
	if c.Chroma, ok = numfmt.Parse(m[3]); !ok {
		return OklchComponents{}, false
	}
	if m[4] != "" {
		c.Chroma = c.Chroma / 100 * maxPercentChroma
	}
	if c.Hue, ok = numfmt.Parse(m[5]); !ok {
		return OklchComponents{}, false
	}
	c.Alpha = 100
	if m[6] != "" {
		if c.Alpha, ok = numfmt.Parse(m[6]); !ok {
			return OklchComponents{}, false
		}
		if m[7] == "" {
			c.Alpha *= 100
		}
	}
	return c, true
}

var colorOklchRules = compositeRules(ParseOklchComponents, OklchComponents.Validate, "invalid oklch color")

// ColorOklch is a color in canonical oklch(L% C Hdeg / A%) form.
type ColorOklch struct {
	StringValue
}

// NewColorOklch creates a ColorOklch.
func NewColorOklch(raw string, opts ...value.Option) (*ColorOklch, error) {
	return NewColorOklchPtr(&raw, opts...)
}

// NewColorOklchPtr creates a ColorOklch; a nil raw means null.
func NewColorOklchPtr(raw *string, opts ...value.Option) (*ColorOklch, error) {
	c := &ColorOklch{}
	return construct(c, &c.Value, raw, colorOklchRules, opts)
}

// NullableColorOklch creates a nullable ColorOklch, null when raw is omitted.
func NullableColorOklch(raw ...string) (*ColorOklch, error) {
	return NewColorOklchPtr(value.First(raw), value.Nullable())
}

// ImmutableColorOklch creates a ColorOklch that rejects every later write.
func ImmutableColorOklch(raw string) (*ColorOklch, error) {
	return NewColorOklchPtr(&raw, value.Immutable())
}

// Components parses the current value. A null value yields alpha 100 and
// zero for every other component.
func (c *ColorOklch) Components() OklchComponents {
	return components(&c.StringValue, ParseOklchComponents, defaultOklchComponents)
}

// Lightness returns the lightness component.
func (c *ColorOklch) Lightness() float64 { return c.Components().Lightness }

// Chroma returns the chroma component.
func (c *ColorOklch) Chroma() float64 { return c.Components().Chroma }

// Hue returns the hue component.
func (c *ColorOklch) Hue() float64 { return c.Components().Hue }

// Alpha returns the alpha component.
func (c *ColorOklch) Alpha() float64 { return c.Components().Alpha }

// SetLightness replaces the lightness percentage; v must be in [0, 100].
func (c *ColorOklch) SetLightness(v float64) error { return c.setComponent("lightness", v) }

// SetChroma replaces the chroma; v must be in [0, 1].
func (c *ColorOklch) SetChroma(v float64) error { return c.setComponent("chroma", v) }

// SetHue replaces the hue component; v must be in [0, 360].
func (c *ColorOklch) SetHue(v float64) error { return c.setComponent("hue", v) }

// SetAlpha replaces the alpha component; v must be in [0, 100].
func (c *ColorOklch) SetAlpha(v float64) error { return c.setComponent("alpha", v) }

func (c *ColorOklch) setComponent(name string, v float64) error {
	return writeComponent(&c.Value, OklchComponentsSchema, c.Components(), name, v)
}
