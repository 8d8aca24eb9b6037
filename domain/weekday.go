package domain

import (
	"time"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/syncmap"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// weekdayNames in time.Weekday order.
var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var weekdayRules = value.Rules[string]{
	Validate: validation.OneOf(weekdayNames...),
}

// weekdays caches one immutable instance per name for the life of the process.
var weekdays = syncmap.New[string, *Weekday]()

// Weekday is the lowercase English name of a day of the week.
//
// The per-name factories (Monday, Tuesday, ...) always return the same
// immutable instance, so identity comparison is valid between them.
type Weekday struct {
	StringValue
}

// NewWeekday creates a Weekday.
func NewWeekday(raw string, opts ...value.Option) (*Weekday, error) {
	return NewWeekdayPtr(&raw, opts...)
}

// NewWeekdayPtr creates a Weekday; a nil raw means null.
func NewWeekdayPtr(raw *string, opts ...value.Option) (*Weekday, error) {
	w := &Weekday{}
	return construct(w, &w.Value, raw, weekdayRules, opts)
}

// NullableWeekday creates a nullable Weekday, null when raw is omitted.
func NullableWeekday(raw ...string) (*Weekday, error) {
	return NewWeekdayPtr(value.First(raw), value.Nullable())
}

// ImmutableWeekday creates a Weekday that rejects every later write.
func ImmutableWeekday(raw string) (*Weekday, error) {
	return NewWeekdayPtr(&raw, value.Immutable())
}

func weekdayInstance(name string) *Weekday {
	return weekdays.ComputeIfAbsent(name, func() *Weekday {
		return errors.Must(ImmutableWeekday(name))
	})
}

// Monday returns the shared immutable monday instance.
func Monday() *Weekday { return weekdayInstance("monday") }

// Tuesday returns the shared immutable tuesday instance.
func Tuesday() *Weekday { return weekdayInstance("tuesday") }

// Wednesday returns the shared immutable wednesday instance.
func Wednesday() *Weekday { return weekdayInstance("wednesday") }

// Thursday returns the shared immutable thursday instance.
func Thursday() *Weekday { return weekdayInstance("thursday") }

// Friday returns the shared immutable friday instance.
func Friday() *Weekday { return weekdayInstance("friday") }

// Saturday returns the shared immutable saturday instance.
func Saturday() *Weekday { return weekdayInstance("saturday") }

// Sunday returns the shared immutable sunday instance.
func Sunday() *Weekday { return weekdayInstance("sunday") }

// Weekdays returns the shared instances from Monday to Sunday.
func Weekdays() []*Weekday {
	return []*Weekday{Monday(), Tuesday(), Wednesday(), Thursday(), Friday(), Saturday(), Sunday()}
}

// WeekdayOf returns the shared instance for d.
func WeekdayOf(d time.Weekday) *Weekday {
	return weekdayInstance(weekdayNames[(int(d)%7+7)%7])
}

// ToTime converts to time.Weekday; false when null.
func (w *Weekday) ToTime() (time.Weekday, bool) {
	name, ok := w.Get()
	if !ok {
		return 0, false
	}
	for i, n := range weekdayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
