package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/authcorp/typevault/internal/numfmt"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

// durationNumeral is a non-negative decimal without leading zeros.
const durationNumeral = `((?:[1-9]\d*|0)(?:\.\d+)?)`

var durationRegex = regexp.MustCompile(`^P` +
	`(?:` + durationNumeral + `Y)?` +
	`(?:` + durationNumeral + `M)?` +
	`(?:` + durationNumeral + `W)?` +
	`(?:` + durationNumeral + `D)?` +
	`(?:T` +
	`(?:` + durationNumeral + `H)?` +
	`(?:` + durationNumeral + `M)?` +
	`(?:` + durationNumeral + `S)?` +
	`)?$`)

// DurationParts are the seven components of a Duration.
type DurationParts struct {
	Years   float64
	Months  float64
	Weeks   float64
	Days    float64
	Hours   float64
	Minutes float64
	Seconds float64
}

// String renders every designator, zeros included: PnYnMnWnDTnHnMnS.
func (d DurationParts) String() string {
	var b strings.Builder
	b.WriteString("P")
	for _, p := range []struct {
		v float64
		d string
	}{
		{d.Years, "Y"}, {d.Months, "M"}, {d.Weeks, "W"}, {d.Days, "D"},
	} {
		b.WriteString(numfmt.Format(p.v))
		b.WriteString(p.d)
	}
	b.WriteString("T")
	for _, p := range []struct {
		v float64
		d string
	}{
		{d.Hours, "H"}, {d.Minutes, "M"}, {d.Seconds, "S"},
	} {
		b.WriteString(numfmt.Format(p.v))
		b.WriteString(p.d)
	}
	return b.String()
}

// Validate checks every component is a finite non-negative number.
func (d DurationParts) Validate() error {
	return checkBounds(
		bound{"years", d.Years, 0, math.MaxFloat64},
		bound{"months", d.Months, 0, math.MaxFloat64},
		bound{"weeks", d.Weeks, 0, math.MaxFloat64},
		bound{"days", d.Days, 0, math.MaxFloat64},
		bound{"hours", d.Hours, 0, math.MaxFloat64},
		bound{"minutes", d.Minutes, 0, math.MaxFloat64},
		bound{"seconds", d.Seconds, 0, math.MaxFloat64},
	)
}

// DurationPartsSchema names the fields of DurationParts for CopyWith.
var DurationPartsSchema = record.NewSchema("DurationParts", DurationParts.Validate,
	floatField("years", func(d DurationParts) float64 { return d.Years },
		func(d DurationParts, v float64) DurationParts { d.Years = v; return d }),
	floatField("months", func(d DurationParts) float64 { return d.Months },
		func(d DurationParts, v float64) DurationParts { d.Months = v; return d }),
	floatField("weeks", func(d DurationParts) float64 { return d.Weeks },
		func(d DurationParts, v float64) DurationParts { d.Weeks = v; return d }),
	floatField("days", func(d DurationParts) float64 { return d.Days },
		func(d DurationParts, v float64) DurationParts { d.Days = v; return d }),
	floatField("hours", func(d DurationParts) float64 { return d.Hours },
		func(d DurationParts, v float64) DurationParts { d.Hours = v; return d }),
	floatField("minutes", func(d DurationParts) float64 { return d.Minutes },
		func(d DurationParts, v float64) DurationParts { d.Minutes = v; return d }),
	floatField("seconds", func(d DurationParts) float64 { return d.Seconds },
		func(d DurationParts, v float64) DurationParts { d.Seconds = v; return d }),
)

// ParseDurationParts reads P[nY][nM][nW][nD][T[nH][nM][nS]]. Missing
// designators read as 0, so "P" and "PT" are the zero duration.
func ParseDurationParts(s string) (DurationParts, bool) {
	m := durationRegex.FindStringSubmatch(s)
	if m == nil {
		return DurationParts{}, false
	}
	var v [7]float64
	for i := range v {
		var ok bool
		if v[i], ok = numeral(m[i+1], 0); !ok {
			return DurationParts{}, false
		}
	}
	return DurationParts{
		Years:   v[0],
		Months:  v[1],
		Weeks:   v[2],
		Days:    v[3],
		Hours:   v[4],
		Minutes: v[5],
		Seconds: v[6],
	}, true
}

var durationRules = compositeRules(ParseDurationParts, DurationParts.Validate, "invalid duration")

// Duration is a calendar duration in canonical PnYnMnWnDTnHnMnS form. Every
// designator is always rendered, so P1Y becomes P1Y0M0W0DT0H0M0S.
type Duration struct {
	StringValue
}

// NewDuration creates a Duration.
func NewDuration(raw string, opts ...value.Option) (*Duration, error) {
	return NewDurationPtr(&raw, opts...)
}

// NewDurationPtr creates a Duration; a nil raw means null.
func NewDurationPtr(raw *string, opts ...value.Option) (*Duration, error) {
	d := &Duration{}
	return construct(d, &d.Value, raw, durationRules, opts)
}

// NullableDuration creates a nullable Duration, null when raw is omitted.
func NullableDuration(raw ...string) (*Duration, error) {
	return NewDurationPtr(value.First(raw), value.Nullable())
}

// ImmutableDuration creates a Duration that rejects every later write.
func ImmutableDuration(raw string) (*Duration, error) {
	return NewDurationPtr(&raw, value.Immutable())
}

// Parts parses the current value. A null value yields all zeros.
func (d *Duration) Parts() DurationParts {
	return components(&d.StringValue, ParseDurationParts, DurationParts{})
}

// Years returns the years component.
func (d *Duration) Years() float64 { return d.Parts().Years }

// Months returns the months component.
func (d *Duration) Months() float64 { return d.Parts().Months }

// Weeks returns the weeks component.
func (d *Duration) Weeks() float64 { return d.Parts().Weeks }

// Days returns the days component.
func (d *Duration) Days() float64 { return d.Parts().Days }

// Hours returns the hours component.
func (d *Duration) Hours() float64 { return d.Parts().Hours }

// Minutes returns the minutes component.
func (d *Duration) Minutes() float64 { return d.Parts().Minutes }

// Seconds returns the seconds component.
func (d *Duration) Seconds() float64 { return d.Parts().Seconds }

// SetYears replaces the years component; v must be non-negative.
func (d *Duration) SetYears(v float64) error { return d.setPart("years", v) }

// SetMonths replaces the months component; v must be non-negative.
func (d *Duration) SetMonths(v float64) error { return d.setPart("months", v) }

// SetWeeks replaces the weeks component; v must be non-negative.
func (d *Duration) SetWeeks(v float64) error { return d.setPart("weeks", v) }

// SetDays replaces the days component; v must be non-negative.
func (d *Duration) SetDays(v float64) error { return d.setPart("days", v) }

// SetHours replaces the hours component; v must be non-negative.
func (d *Duration) SetHours(v float64) error { return d.setPart("hours", v) }

// SetMinutes replaces the minutes component; v must be non-negative.
func (d *Duration) SetMinutes(v float64) error { return d.setPart("minutes", v) }

// SetSeconds replaces the seconds component; v must be non-negative.
func (d *Duration) SetSeconds(v float64) error { return d.setPart("seconds", v) }

func (d *Duration) setPart(name string, v float64) error {
	return writeComponent(&d.Value, DurationPartsSchema, d.Parts(), name, v)
}
