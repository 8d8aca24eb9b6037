package domain

import (
	"regexp"

	"github.com/authcorp/typevault/internal/numfmt"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

const rgbNumeral = `(\d{1,3}(?:\.\d+)?|\.\d+)`

// Covers rgb(r,g,b), rgba(r,g,b,a), rgb(r g b) and rgb(r g b / a).
var rgbRegex = regexp.MustCompile(`^rgba?\(` +
	rgbNumeral + `(?:, ?| )` + rgbNumeral + `(?:, ?| )` + rgbNumeral +
	`(?:(?:, ?| ?/ ?)` + rgbNumeral + `(%)?)?\)$`)

// RgbChannels are the components of a ColorRgb. Alpha is a percentage.
type RgbChannels struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

var defaultRgbChannels = RgbChannels{Alpha: 100}

// String renders the channels as rgb(R G B / A%).
func (c RgbChannels) String() string {
	return "rgb(" + numfmt.Format(c.Red) + " " + numfmt.Format(c.Green) + " " +
		numfmt.Format(c.Blue) + " / " + numfmt.Format(c.Alpha) + "%)"
}

// Validate checks red, green and blue are in [0, 255] and alpha in [0, 100].
func (c RgbChannels) Validate() error {
	return checkBounds(
		bound{"red", c.Red, 0, 255},
		bound{"green", c.Green, 0, 255},
		bound{"blue", c.Blue, 0, 255},
		bound{"alpha", c.Alpha, 0, 100},
	)
}

// RgbChannelsSchema names the fields of RgbChannels for CopyWith.
var RgbChannelsSchema = record.NewSchema("RgbChannels", RgbChannels.Validate,
	floatField("red", func(c RgbChannels) float64 { return c.Red },
		func(c RgbChannels, v float64) RgbChannels { c.Red = v; return c }),
	floatField("green", func(c RgbChannels) float64 { return c.Green },
		func(c RgbChannels, v float64) RgbChannels { c.Green = v; return c }),
	floatField("blue", func(c RgbChannels) float64 { return c.Blue },
		func(c RgbChannels, v float64) RgbChannels { c.Blue = v; return c }),
	floatField("alpha", func(c RgbChannels) float64 { return c.Alpha },
		func(c RgbChannels, v float64) RgbChannels { c.Alpha = v; return c }),
)

// ParseRgbChannels reads any accepted rgb()/rgba() notation. A fractional
// alpha is scaled to a percentage; a missing alpha is 100.
func ParseRgbChannels(s string) (RgbChannels, bool) {
	m := rgbRegex.FindStringSubmatch(s)
	if m == nil {
		return RgbChannels{}, false
	}
	var c RgbChannels
	var ok bool
	if c.Red, ok = numfmt.Parse(m[1]); !ok {
		return RgbChannels{}, false
	}
	if c.Green, ok = numfmt.Parse(m[2]); !ok {
		return RgbChannels{}, false
	}
	if c.Blue, ok = numfmt.Parse(m[3]); !ok {
		return RgbChannels{}, false
	}
	c.Alpha = 100
	if m[4] != "" {
		if c.Alpha, ok = numfmt.Parse(m[4]); !ok {
			return RgbChannels{}, false
		}
		if m[5] == "" {
			c.Alpha *= 100
		}
	}
	return c, true
}

var colorRgbRules = compositeRules(ParseRgbChannels, RgbChannels.Validate, "invalid rgb color")

// ColorRgb is a color in canonical rgb(R G B / A%) form.
type ColorRgb struct {
	StringValue
}

// NewColorRgb creates a ColorRgb.
func NewColorRgb(raw string, opts ...value.Option) (*ColorRgb, error) {
	return NewColorRgbPtr(&raw, opts...)
}

// NewColorRgbPtr creates a ColorRgb; a nil raw means null.
func NewColorRgbPtr(raw *string, opts ...value.Option) (*ColorRgb, error) {
	c := &ColorRgb{}
	return construct(c, &c.Value, raw, colorRgbRules, opts)
}

// NullableColorRgb creates a nullable ColorRgb, null when raw is omitted.
func NullableColorRgb(raw ...string) (*ColorRgb, error) {
	return NewColorRgbPtr(value.First(raw), value.Nullable())
}

// ImmutableColorRgb creates a ColorRgb that rejects every later write.
func ImmutableColorRgb(raw string) (*ColorRgb, error) {
	return NewColorRgbPtr(&raw, value.Immutable())
}

// Channels parses the current value. A null value yields alpha 100 and zero
// for every other channel.
func (c *ColorRgb) Channels() RgbChannels {
	return components(&c.StringValue, ParseRgbChannels, defaultRgbChannels)
}

// Red returns the red channel.
func (c *ColorRgb) Red() float64 { return c.Channels().Red }

// Green returns the green channel.
func (c *ColorRgb) Green() float64 { return c.Channels().Green }

// Blue returns the blue channel.
func (c *ColorRgb) Blue() float64 { return c.Channels().Blue }

// Alpha returns the alpha channel.
func (c *ColorRgb) Alpha() float64 { return c.Channels().Alpha }

// SetRed replaces the red channel; v must be in [0, 255].
func (c *ColorRgb) SetRed(v float64) error { return c.setChannel("red", v) }

// SetGreen replaces the green channel; v must be in [0, 255].
func (c *ColorRgb) SetGreen(v float64) error { return c.setChannel("green", v) }

// SetBlue replaces the blue channel; v must be in [0, 255].
func (c *ColorRgb) SetBlue(v float64) error { return c.setChannel("blue", v) }

// SetAlpha replaces the alpha percentage; v must be in [0, 100].
func (c *ColorRgb) SetAlpha(v float64) error { return c.setChannel("alpha", v) }

func (c *ColorRgb) setChannel(name string, v float64) error {
	return writeComponent(&c.Value, RgbChannelsSchema, c.Channels(), name, v)
}
