package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

var timeOnlyRegex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?$`)

// TimeParts are the components of a TimeOnly.
type TimeParts struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// String renders the parts as HH:mm:ss.sss.
func (p TimeParts) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", p.Hour, p.Minute, p.Second, p.Millisecond)
}

// Validate checks each part's range and that the parts name a real time of
// day on 0000-01-01.
func (p TimeParts) Validate() error {
	if err := checkBounds(
		bound{"hour", float64(p.Hour), 0, 23},
		bound{"minute", float64(p.Minute), 0, 59},
		bound{"second", float64(p.Second), 0, 59},
		bound{"millisecond", float64(p.Millisecond), 0, 999},
	); err != nil {
		return err
	}
	t := time.Date(0, time.January, 1, p.Hour, p.Minute, p.Second, p.Millisecond*int(time.Millisecond), time.UTC)
	if t.Day() != 1 || t.Hour() != p.Hour || t.Minute() != p.Minute || t.Second() != p.Second {
		return errors.Invalid("invalid time")
	}
	return nil
}

// Duration returns the time elapsed since midnight.
func (p TimeParts) Duration() time.Duration {
	return time.Duration(p.Hour)*time.Hour + time.Duration(p.Minute)*time.Minute +
		time.Duration(p.Second)*time.Second + time.Duration(p.Millisecond)*time.Millisecond
}

// TimePartsSchema names the fields of TimeParts for CopyWith.
var TimePartsSchema = record.NewSchema("TimeParts", TimeParts.Validate,
	intField("hour", func(p TimeParts) int { return p.Hour },
		func(p TimeParts, v int) TimeParts { p.Hour = v; return p }),
	intField("minute", func(p TimeParts) int { return p.Minute },
		func(p TimeParts, v int) TimeParts { p.Minute = v; return p }),
	intField("second", func(p TimeParts) int { return p.Second },
		func(p TimeParts, v int) TimeParts { p.Second = v; return p }),
	intField("millisecond", func(p TimeParts) int { return p.Millisecond },
		func(p TimeParts, v int) TimeParts { p.Millisecond = v; return p }),
)

// ParseTimeParts reads h:m:s[.f] with one or two digits per field and one to
// three fraction digits. Ranges are not checked.
func ParseTimeParts(s string) (TimeParts, bool) {
	m := timeOnlyRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeParts{}, false
	}
	return TimeParts{
		Hour:        atoi(m[1]),
		Minute:      atoi(m[2]),
		Second:      atoi(m[3]),
		Millisecond: millis(m[4]),
	}, true
}

var timeOnlyRules = compositeRules(ParseTimeParts, TimeParts.Validate, "invalid time")

// TimeOnly is a time of day in canonical HH:mm:ss.sss form.
type TimeOnly struct {
	StringValue
}

// NewTimeOnly creates a TimeOnly.
func NewTimeOnly(raw string, opts ...value.Option) (*TimeOnly, error) {
	return NewTimeOnlyPtr(&raw, opts...)
}

// NewTimeOnlyPtr creates a TimeOnly; a nil raw means null.
func NewTimeOnlyPtr(raw *string, opts ...value.Option) (*TimeOnly, error) {
	t := &TimeOnly{}
	return construct(t, &t.Value, raw, timeOnlyRules, opts)
}

// NullableTimeOnly creates a nullable TimeOnly, null when raw is omitted.
func NullableTimeOnly(raw ...string) (*TimeOnly, error) {
	return NewTimeOnlyPtr(value.First(raw), value.Nullable())
}

// ImmutableTimeOnly creates a TimeOnly that rejects every later write.
func ImmutableTimeOnly(raw string) (*TimeOnly, error) {
	return NewTimeOnlyPtr(&raw, value.Immutable())
}

// TimeOnlyFromTime creates a TimeOnly from the wall clock of t, truncated to
// the millisecond.
func TimeOnlyFromTime(t time.Time, opts ...value.Option) (*TimeOnly, error) {
	return NewTimeOnly(TimeParts{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}.String(), opts...)
}

// Parts parses the current value. A null value yields 00:00:00.000.
func (t *TimeOnly) Parts() TimeParts {
	return components(&t.StringValue, ParseTimeParts, TimeParts{})
}

// Hour returns the hour field.
func (t *TimeOnly) Hour() int { return t.Parts().Hour }

// Minute returns the minute field.
func (t *TimeOnly) Minute() int { return t.Parts().Minute }

// Second returns the second field.
func (t *TimeOnly) Second() int { return t.Parts().Second }

// Millisecond returns the millisecond field.
func (t *TimeOnly) Millisecond() int { return t.Parts().Millisecond }

// SetHour replaces the hour field; v must be in [0, 23].
func (t *TimeOnly) SetHour(v int) error { return t.setPart("hour", v) }

// SetMinute replaces the minute field; v must be in [0, 59].
func (t *TimeOnly) SetMinute(v int) error { return t.setPart("minute", v) }

// SetSecond replaces the second field; v must be in [0, 59].
func (t *TimeOnly) SetSecond(v int) error { return t.setPart("second", v) }

// SetMillisecond replaces the millisecond field; v must be in [0, 999].
func (t *TimeOnly) SetMillisecond(v int) error { return t.setPart("millisecond", v) }

func (t *TimeOnly) setPart(name string, v int) error {
	return writeComponent(&t.Value, TimePartsSchema, t.Parts(), name, v)
}
