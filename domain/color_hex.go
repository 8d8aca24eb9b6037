package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

var (
	hexCanonicalRegex = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
	hexShortRegex     = regexp.MustCompile(`^#([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	hexLongRegex      = regexp.MustCompile(`^#[0-9a-fA-F]{6,8}$`)
)

// HexChannels are the four 8-bit channels of a ColorHex.
type HexChannels struct {
	Red   int
	Green int
	Blue  int
	Alpha int
}

// String renders the channels as #rrggbbaa.
func (c HexChannels) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red, c.Green, c.Blue, c.Alpha)
}

// Validate checks every channel is in [0, 255].
func (c HexChannels) Validate() error {
	return checkBounds(
		bound{"red", float64(c.Red), 0, 255},
		bound{"green", float64(c.Green), 0, 255},
		bound{"blue", float64(c.Blue), 0, 255},
		bound{"alpha", float64(c.Alpha), 0, 255},
	)
}

// HexChannelsSchema names the fields of HexChannels for CopyWith.
var HexChannelsSchema = record.NewSchema("HexChannels", HexChannels.Validate,
	intField("red", func(c HexChannels) int { return c.Red },
		func(c HexChannels, v int) HexChannels { c.Red = v; return c }),
	intField("green", func(c HexChannels) int { return c.Green },
		func(c HexChannels, v int) HexChannels { c.Green = v; return c }),
	intField("blue", func(c HexChannels) int { return c.Blue },
		func(c HexChannels, v int) HexChannels { c.Blue = v; return c }),
	intField("alpha", func(c HexChannels) int { return c.Alpha },
		func(c HexChannels, v int) HexChannels { c.Alpha = v; return c }),
)

var colorHexRules = value.Rules[string]{
	Modify:   expandHex,
	Validate: validation.MatchesRegex(hexCanonicalRegex, "invalid hex color"),
}

// expandHex turns #rgb into #rrggbbff and pads #rrggbb / #rrggbba with f up to
// eight digits. Anything else is returned unchanged for the validator to reject.
func expandHex(s string) string {
	if m := hexShortRegex.FindStringSubmatch(s); m != nil {
		return strings.ToLower("#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3] + "ff")
	}
	if hexLongRegex.MatchString(s) {
		s = strings.ToLower(s)
		return s + strings.Repeat("f", 9-len(s))
	}
	return s
}

func hexByte(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return int(n % 256)
}

// ParseHexChannels extracts the channels of a canonical #rrggbbaa string.
func ParseHexChannels(s string) (HexChannels, bool) {
	if !hexCanonicalRegex.MatchString(s) {
		return HexChannels{}, false
	}
	return HexChannels{
		Red:   hexByte(s[1:3]),
		Green: hexByte(s[3:5]),
		Blue:  hexByte(s[5:7]),
		Alpha: hexByte(s[7:9]),
	}, true
}

// ColorHex is a color in canonical #rrggbbaa form. Input may use #rgb,
// #rrggbb, #rrggbba or #rrggbbaa in either case.
type ColorHex struct {
	StringValue
}

// NewColorHex creates a ColorHex.
func NewColorHex(raw string, opts ...value.Option) (*ColorHex, error) {
	return NewColorHexPtr(&raw, opts...)
}

// NewColorHexPtr creates a ColorHex; a nil raw means null.
func NewColorHexPtr(raw *string, opts ...value.Option) (*ColorHex, error) {
	c := &ColorHex{}
	return construct(c, &c.Value, raw, colorHexRules, opts)
}

// NullableColorHex creates a nullable ColorHex, null when raw is omitted.
func NullableColorHex(raw ...string) (*ColorHex, error) {
	return NewColorHexPtr(value.First(raw), value.Nullable())
}

// ImmutableColorHex creates a ColorHex that rejects every later write.
func ImmutableColorHex(raw string) (*ColorHex, error) {
	return NewColorHexPtr(&raw, value.Immutable())
}

// Channels parses the current value. A null value yields all zeros.
func (c *ColorHex) Channels() HexChannels {
	return components(&c.StringValue, ParseHexChannels, HexChannels{})
}

// Red returns the red channel.
func (c *ColorHex) Red() int { return c.Channels().Red }

// Green returns the green channel.
func (c *ColorHex) Green() int { return c.Channels().Green }

// Blue returns the blue channel.
func (c *ColorHex) Blue() int { return c.Channels().Blue }

// Alpha returns the alpha channel.
func (c *ColorHex) Alpha() int { return c.Channels().Alpha }

// SetRed replaces the red channel; v must be in [0, 255].
func (c *ColorHex) SetRed(v int) error { return c.setChannel("red", v) }

// SetGreen replaces the green channel; v must be in [0, 255].
func (c *ColorHex) SetGreen(v int) error { return c.setChannel("green", v) }

// SetBlue replaces the blue channel; v must be in [0, 255].
func (c *ColorHex) SetBlue(v int) error { return c.setChannel("blue", v) }

// SetAlpha replaces the alpha channel; v must be in [0, 255].
func (c *ColorHex) SetAlpha(v int) error { return c.setChannel("alpha", v) }

func (c *ColorHex) setChannel(name string, v int) error {
	return writeComponent(&c.Value, HexChannelsSchema, c.Channels(), name, v)
}
