package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

var dateTimeRegex = regexp.MustCompile(
	`^(\d{1,4})-(\d{1,2})-(\d{1,2})T(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\.(\d+))?Z$`)

// DateTimeParts are the components of a DateTime.
type DateTimeParts struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

var defaultDateTimeParts = DateTimeParts{Month: 1, Day: 1}

// String renders the parts as YYYY-MM-DDTHH:mm:ss.sssZ.
func (d DateTimeParts) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond)
}

// Validate checks each part's range and that the parts name a real instant.
func (d DateTimeParts) Validate() error {
	if err := checkBounds(
		bound{"year", float64(d.Year), 0, 9999},
		bound{"month", float64(d.Month), 1, 12},
		bound{"day", float64(d.Day), 1, 31},
		bound{"hour", float64(d.Hour), 0, 23},
		bound{"minute", float64(d.Minute), 0, 59},
		bound{"second", float64(d.Second), 0, 59},
		bound{"millisecond", float64(d.Millisecond), 0, 999},
	); err != nil {
		return err
	}
	t := d.Time()
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day ||
		t.Hour() != d.Hour || t.Minute() != d.Minute || t.Second() != d.Second ||
		t.Nanosecond()/int(time.Millisecond) != d.Millisecond {
		return errors.Invalid("invalid date time")
	}
	return nil
}

// Time returns the instant in UTC.
func (d DateTimeParts) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second,
		d.Millisecond*int(time.Millisecond), time.UTC)
}

// DateTimePartsSchema names the fields of DateTimeParts for CopyWith.
var DateTimePartsSchema = record.NewSchema("DateTimeParts", DateTimeParts.Validate,
	intField("year", func(d DateTimeParts) int { return d.Year },
		func(d DateTimeParts, v int) DateTimeParts { d.Year = v; return d }),
	intField("month", func(d DateTimeParts) int { return d.Month },
		func(d DateTimeParts, v int) DateTimeParts { d.Month = v; return d }),
	intField("day", func(d DateTimeParts) int { return d.Day },
		func(d DateTimeParts, v int) DateTimeParts { d.Day = v; return d }),
	intField("hour", func(d DateTimeParts) int { return d.Hour },
		func(d DateTimeParts, v int) DateTimeParts { d.Hour = v; return d }),
	intField("minute", func(d DateTimeParts) int { return d.Minute },
		func(d DateTimeParts, v int) DateTimeParts { d.Minute = v; return d }),
	intField("second", func(d DateTimeParts) int { return d.Second },
		func(d DateTimeParts, v int) DateTimeParts { d.Second = v; return d }),
	intField("millisecond", func(d DateTimeParts) int { return d.Millisecond },
		func(d DateTimeParts, v int) DateTimeParts { d.Millisecond = v; return d }),
)

// millis reads a fraction of a second as milliseconds: "7" is 700 and digits
// past the third are dropped.
func millis(fraction string) int {
	if len(fraction) > 3 {
		fraction = fraction[:3]
	}
	n := atoi(fraction)
	for i := len(fraction); i < 3; i++ {
		n *= 10
	}
	return n
}

// ParseDateTimeParts reads Y-M-DTh:m:s[.f]Z with permissive field widths.
// Ranges are not checked.
func ParseDateTimeParts(s string) (DateTimeParts, bool) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return DateTimeParts{}, false
	}
	return DateTimeParts{
		Year:        atoi(m[1]),
		Month:       atoi(m[2]),
		Day:         atoi(m[3]),
		Hour:        atoi(m[4]),
		Minute:      atoi(m[5]),
		Second:      atoi(m[6]),
		Millisecond: millis(m[7]),
	}, true
}

var dateTimeRules = compositeRules(ParseDateTimeParts, DateTimeParts.Validate, "invalid date time")

// DateTime is a UTC instant in canonical YYYY-MM-DDTHH:mm:ss.sssZ form.
type DateTime struct {
	StringValue
}

// NewDateTime creates a DateTime.
func NewDateTime(raw string, opts ...value.Option) (*DateTime, error) {
	return NewDateTimePtr(&raw, opts...)
}

// NewDateTimePtr creates a DateTime; a nil raw means null.
func NewDateTimePtr(raw *string, opts ...value.Option) (*DateTime, error) {
	d := &DateTime{}
	return construct(d, &d.Value, raw, dateTimeRules, opts)
}

// NullableDateTime creates a nullable DateTime, null when raw is omitted.
func NullableDateTime(raw ...string) (*DateTime, error) {
	return NewDateTimePtr(value.First(raw), value.Nullable())
}

// ImmutableDateTime creates a DateTime that rejects every later write.
func ImmutableDateTime(raw string) (*DateTime, error) {
	return NewDateTimePtr(&raw, value.Immutable())
}

// DateTimeFromTime creates a DateTime from t converted to UTC, truncated to
// the millisecond.
func DateTimeFromTime(t time.Time, opts ...value.Option) (*DateTime, error) {
	t = t.UTC()
	return NewDateTime(DateTimeParts{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}.String(), opts...)
}

// Parts parses the current value. A null value yields 0000-01-01T00:00:00.000Z.
func (d *DateTime) Parts() DateTimeParts {
	return components(&d.StringValue, ParseDateTimeParts, defaultDateTimeParts)
}

// ToTime returns the instant in UTC; false when null.
func (d *DateTime) ToTime() (time.Time, bool) {
	if d.IsNull() {
		return time.Time{}, false
	}
	return d.Parts().Time(), true
}

// Year returns the year field.
func (d *DateTime) Year() int { return d.Parts().Year }

// Month returns the month field.
func (d *DateTime) Month() int { return d.Parts().Month }

// Day returns the day field.
func (d *DateTime) Day() int { return d.Parts().Day }

// Hour returns the hour field.
func (d *DateTime) Hour() int { return d.Parts().Hour }

// Minute returns the minute field.
func (d *DateTime) Minute() int { return d.Parts().Minute }

// Second returns the second field.
func (d *DateTime) Second() int { return d.Parts().Second }

// Millisecond returns the millisecond field.
func (d *DateTime) Millisecond() int { return d.Parts().Millisecond }

// SetYear replaces the year field; v must be in [0, 9999].
func (d *DateTime) SetYear(v int) error { return d.setPart("year", v) }

// SetMonth replaces the month field; v must be in [1, 12].
func (d *DateTime) SetMonth(v int) error { return d.setPart("month", v) }

// SetDay replaces the day; it must exist in the current month.
func (d *DateTime) SetDay(v int) error { return d.setPart("day", v) }

// SetHour replaces the hour field; v must be in [0, 23].
func (d *DateTime) SetHour(v int) error { return d.setPart("hour", v) }

// SetMinute replaces the minute field; v must be in [0, 59].
func (d *DateTime) SetMinute(v int) error { return d.setPart("minute", v) }

// SetSecond replaces the second field; v must be in [0, 59].
func (d *DateTime) SetSecond(v int) error { return d.setPart("second", v) }

// SetMillisecond replaces the millisecond field; v must be in [0, 999].
func (d *DateTime) SetMillisecond(v int) error { return d.setPart("millisecond", v) }

func (d *DateTime) setPart(name string, v int) error {
	return writeComponent(&d.Value, DateTimePartsSchema, d.Parts(), name, v)
}
