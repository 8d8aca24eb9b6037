package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/value"
)

var dateOnlyRegex = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

// DateParts are the components of a DateOnly.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

var defaultDateParts = DateParts{Month: 1, Day: 1}

// String renders the parts as YYYY-MM-DD.
func (d DateParts) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate checks each part's range and that the parts name a real date.
func (d DateParts) Validate() error {
	if err := checkBounds(
		bound{"year", float64(d.Year), 0, 9999},
		bound{"month", float64(d.Month), 1, 12},
		bound{"day", float64(d.Day), 1, 31},
	); err != nil {
		return err
	}
	t := d.Time()
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return errors.Invalid("invalid date")
	}
	return nil
}

// Time returns midnight UTC on the date.
func (d DateParts) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DatePartsSchema names the fields of DateParts for CopyWith.
var DatePartsSchema = record.NewSchema("DateParts", DateParts.Validate,
	intField("year", func(d DateParts) int { return d.Year },
		func(d DateParts, v int) DateParts { d.Year = v; return d }),
	intField("month", func(d DateParts) int { return d.Month },
		func(d DateParts, v int) DateParts { d.Month = v; return d }),
	intField("day", func(d DateParts) int { return d.Day },
		func(d DateParts, v int) DateParts { d.Day = v; return d }),
)

// ParseDateParts reads Y-M-D with one to four year digits and one or two
// month and day digits. Ranges are not checked.
func ParseDateParts(s string) (DateParts, bool) {
	m := dateOnlyRegex.FindStringSubmatch(s)
	if m == nil {
		return DateParts{}, false
	}
	return DateParts{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}, true
}

var dateOnlyRules = compositeRules(ParseDateParts, DateParts.Validate, "invalid date")

// DateOnly is a calendar date in canonical YYYY-MM-DD form.
type DateOnly struct {
	StringValue
}

// NewDateOnly creates a DateOnly.
func NewDateOnly(raw string, opts ...value.Option) (*DateOnly, error) {
	return NewDateOnlyPtr(&raw, opts...)
}

// NewDateOnlyPtr creates a DateOnly; a nil raw means null.
func NewDateOnlyPtr(raw *string, opts ...value.Option) (*DateOnly, error) {
	d := &DateOnly{}
	return construct(d, &d.Value, raw, dateOnlyRules, opts)
}

// NullableDateOnly creates a nullable DateOnly, null when raw is omitted.
func NullableDateOnly(raw ...string) (*DateOnly, error) {
	return NewDateOnlyPtr(value.First(raw), value.Nullable())
}

// ImmutableDateOnly creates a DateOnly that rejects every later write.
func ImmutableDateOnly(raw string) (*DateOnly, error) {
	return NewDateOnlyPtr(&raw, value.Immutable())
}

// DateOnlyFromTime creates a DateOnly from the calendar date of t in t's
// location.
func DateOnlyFromTime(t time.Time, opts ...value.Option) (*DateOnly, error) {
	return NewDateOnly(DateParts{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}.String(), opts...)
}

// Parts parses the current value. A null value yields 0000-01-01.
func (d *DateOnly) Parts() DateParts {
	return components(&d.StringValue, ParseDateParts, defaultDateParts)
}

// ToTime returns midnight UTC on the date; false when null.
func (d *DateOnly) ToTime() (time.Time, bool) {
	if d.IsNull() {
		return time.Time{}, false
	}
	return d.Parts().Time(), true
}

// Year returns the year field.
func (d *DateOnly) Year() int { return d.Parts().Year }

// Month returns the month field.
func (d *DateOnly) Month() int { return d.Parts().Month }

// Day returns the day field.
func (d *DateOnly) Day() int { return d.Parts().Day }

// SetYear replaces the year field; v must be in [0, 9999].
func (d *DateOnly) SetYear(v int) error { return d.setPart("year", v) }

// SetMonth replaces the month field; v must be in [1, 12].
func (d *DateOnly) SetMonth(v int) error { return d.setPart("month", v) }

// SetDay replaces the day; it must exist in the current month.
func (d *DateOnly) SetDay(v int) error { return d.setPart("day", v) }

func (d *DateOnly) setPart(name string, v int) error {
	return writeComponent(&d.Value, DatePartsSchema, d.Parts(), name, v)
}
