package domain

import (
	"time"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/syncmap"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var monthRules = value.Rules[string]{
	Validate: validation.OneOf(monthNames...),
}

var months = syncmap.New[string, *Month]()

// Month is the lowercase English name of a month. The per-name factories
// return shared immutable instances.
type Month struct {
	StringValue
}

// NewMonth creates a Month.
func NewMonth(raw string, opts ...value.Option) (*Month, error) {
	return NewMonthPtr(&raw, opts...)
}

// NewMonthPtr creates a Month; a nil raw means null.
func NewMonthPtr(raw *string, opts ...value.Option) (*Month, error) {
	m := &Month{}
	return construct(m, &m.Value, raw, monthRules, opts)
}

// NullableMonth creates a nullable Month, null when raw is omitted.
func NullableMonth(raw ...string) (*Month, error) {
	return NewMonthPtr(value.First(raw), value.Nullable())
}

// ImmutableMonth creates a Month that rejects every later write.
func ImmutableMonth(raw string) (*Month, error) {
	return NewMonthPtr(&raw, value.Immutable())
}

func monthInstance(name string) *Month {
	return months.ComputeIfAbsent(name, func() *Month {
		return errors.Must(ImmutableMonth(name))
	})
}

// January returns the shared immutable january instance.
func January() *Month { return monthInstance("january") }

// February returns the shared immutable february instance.
func February() *Month { return monthInstance("february") }

// March returns the shared immutable march instance.
func March() *Month { return monthInstance("march") }

// April returns the shared immutable april instance.
func April() *Month { return monthInstance("april") }

// May returns the shared immutable may instance.
func May() *Month { return monthInstance("may") }

// June returns the shared immutable june instance.
func June() *Month { return monthInstance("june") }

// July returns the shared immutable july instance.
func July() *Month { return monthInstance("july") }

// August returns the shared immutable august instance.
func August() *Month { return monthInstance("august") }

// September returns the shared immutable september instance.
func September() *Month { return monthInstance("september") }

// October returns the shared immutable october instance.
func October() *Month { return monthInstance("october") }

// November returns the shared immutable november instance.
func November() *Month { return monthInstance("november") }

// December returns the shared immutable december instance.
func December() *Month { return monthInstance("december") }

// Months returns the shared instances from January to December.
func Months() []*Month {
	out := make([]*Month, len(monthNames))
	for i, name := range monthNames {
		out[i] = monthInstance(name)
	}
	return out
}

// MonthOf returns the shared instance for m, which must be in 1..12.
func MonthOf(m time.Month) (*Month, error) {
	if err := validation.AssertClamp("month", int(m), 1, 12); err != nil {
		return nil, err
	}
	return monthInstance(monthNames[m-1]), nil
}

// ToTime converts to time.Month; false when null.
func (m *Month) ToTime() (time.Month, bool) {
	name, ok := m.Get()
	if !ok {
		return 0, false
	}
	for i, n := range monthNames {
		if n == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
