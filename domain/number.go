package domain

import (
	"math"

	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// int64 bounds as float64; 2^63 itself is outside the range.
var (
	minInt64Float = float64(math.MinInt64)
	maxInt64Float = math.Ldexp(1, 63)
)

var (
	integerRules = value.Rules[float64]{
		Modify: math.Trunc,
		Validate: validation.And(
			validation.Finite(),
			validation.InRange(minInt64Float, maxInt64Float),
			validation.Below(maxInt64Float),
		),
	}
	floatingPointRules = value.Rules[float64]{
		Validate: validation.Finite(),
	}
	percentageRules = value.Rules[float64]{
		Validate: validation.And(validation.Finite(), validation.InRange(0.0, 1.0)),
	}
	yearRules = value.Rules[float64]{
		Validate: validation.And(
			validation.Finite(),
			validation.InRange(0.0, 9999.0),
			validation.Integral(),
		),
	}
)

// Integer is a whole number in the int64 range. Fractional input is truncated
// toward zero: 1.9 becomes 1, -1.9 becomes -1.
type Integer struct {
	NumberValue
}

// NewInteger creates an Integer.
func NewInteger(raw float64, opts ...value.Option) (*Integer, error) {
	return NewIntegerPtr(&raw, opts...)
}

// NewIntegerPtr creates an Integer; a nil raw means null.
func NewIntegerPtr(raw *float64, opts ...value.Option) (*Integer, error) {
	i := &Integer{}
	return construct(i, &i.Value, raw, integerRules, opts)
}

// NullableInteger creates a nullable Integer, null when raw is omitted.
func NullableInteger(raw ...float64) (*Integer, error) {
	return NewIntegerPtr(value.First(raw), value.Nullable())
}

// ImmutableInteger creates an Integer that rejects every later write.
func ImmutableInteger(raw float64) (*Integer, error) {
	return NewIntegerPtr(&raw, value.Immutable())
}

// Int64 returns the stored integer, or 0 when null.
func (i *Integer) Int64() int64 {
	return int64(i.Float64())
}

// FloatingPoint is any finite number.
type FloatingPoint struct {
	NumberValue
}

// NewFloatingPoint creates a FloatingPoint.
func NewFloatingPoint(raw float64, opts ...value.Option) (*FloatingPoint, error) {
	return NewFloatingPointPtr(&raw, opts...)
}

// NewFloatingPointPtr creates a FloatingPoint; a nil raw means null.
func NewFloatingPointPtr(raw *float64, opts ...value.Option) (*FloatingPoint, error) {
	f := &FloatingPoint{}
	return construct(f, &f.Value, raw, floatingPointRules, opts)
}

// NullableFloatingPoint creates a nullable FloatingPoint, null when raw is omitted.
func NullableFloatingPoint(raw ...float64) (*FloatingPoint, error) {
	return NewFloatingPointPtr(value.First(raw), value.Nullable())
}

// ImmutableFloatingPoint creates a FloatingPoint that rejects every later write.
func ImmutableFloatingPoint(raw float64) (*FloatingPoint, error) {
	return NewFloatingPointPtr(&raw, value.Immutable())
}

// Percentage is a ratio in [0, 1].
type Percentage struct {
	NumberValue
}

// NewPercentage creates a Percentage.
func NewPercentage(raw float64, opts ...value.Option) (*Percentage, error) {
	return NewPercentagePtr(&raw, opts...)
}

// NewPercentagePtr creates a Percentage; a nil raw means null.
func NewPercentagePtr(raw *float64, opts ...value.Option) (*Percentage, error) {
	p := &Percentage{}
	return construct(p, &p.Value, raw, percentageRules, opts)
}

// NullablePercentage creates a nullable Percentage, null when raw is omitted.
func NullablePercentage(raw ...float64) (*Percentage, error) {
	return NewPercentagePtr(value.First(raw), value.Nullable())
}

// ImmutablePercentage creates a Percentage that rejects every later write.
func ImmutablePercentage(raw float64) (*Percentage, error) {
	return NewPercentagePtr(&raw, value.Immutable())
}

// Year is a whole year in [0, 9999].
type Year struct {
	NumberValue
}

// NewYear creates a Year.
func NewYear(raw float64, opts ...value.Option) (*Year, error) {
	return NewYearPtr(&raw, opts...)
}

// NewYearPtr creates a Year; a nil raw means null.
func NewYearPtr(raw *float64, opts ...value.Option) (*Year, error) {
	y := &Year{}
	return construct(y, &y.Value, raw, yearRules, opts)
}

// NullableYear creates a nullable Year, null when raw is omitted.
func NullableYear(raw ...float64) (*Year, error) {
	return NewYearPtr(value.First(raw), value.Nullable())
}

// ImmutableYear creates a Year that rejects every later write.
func ImmutableYear(raw float64) (*Year, error) {
	return NewYearPtr(&raw, value.Immutable())
}

// Int returns the stored year, or 0 when null.
func (y *Year) Int() int {
	return int(y.Float64())
}
