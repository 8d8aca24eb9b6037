// Package validation provides composable value predicates used by the typed
// value container, plus the range assertion applied to component writes.
package validation

import (
	"math"
	"regexp"

	"github.com/authcorp/typevault/errors"
)

// Validator checks an already-modified value. A nil result means the value is accepted.
type Validator[T any] func(T) *errors.ValidationError

// Number is the set of numeric kinds the range validators accept.
type Number interface {
	~int | ~int64 | ~float64
}

// And combines validators with AND logic (all must pass).
func And[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *errors.ValidationError {
		for _, validator := range validators {
			if err := validator(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Or combines validators with OR logic (at least one must pass).
func Or[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *errors.ValidationError {
		lastErr := errors.Invalid("")
		for _, validator := range validators {
			err := validator(v)
			if err == nil {
				return nil
			}
			lastErr = err
		}
		return lastErr
	}
}

// Custom creates a validator from a boolean predicate.
func Custom[T any](check func(T) bool, message string) Validator[T] {
	return func(v T) *errors.ValidationError {
		if !check(v) {
			return errors.Invalid(message)
		}
		return nil
	}
}

// String validators

// MatchesRegex checks string matches pattern.
func MatchesRegex(pattern *regexp.Regexp, message string) Validator[string] {
	return func(s string) *errors.ValidationError {
		if !pattern.MatchString(s) {
			return errors.Invalid(message)
		}
		return nil
	}
}

// OneOf checks value is one of allowed values.
func OneOf[T comparable](allowed ...T) Validator[T] {
	return func(v T) *errors.ValidationError {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return errors.Invalid("must be one of allowed values")
	}
}

// Numeric validators

// Finite rejects NaN and infinities.
func Finite() Validator[float64] {
	return func(v float64) *errors.ValidationError {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Invalid("must be a finite number")
		}
		return nil
	}
}

// Integral rejects values with a fractional part.
func Integral() Validator[float64] {
	return func(v float64) *errors.ValidationError {
		if v != math.Trunc(v) {
			return errors.Invalid("must be a whole number")
		}
		return nil
	}
}

// InRange checks value is within the inclusive [min, max] range.
func InRange[T Number](min, max T) Validator[T] {
	return func(v T) *errors.ValidationError {
		if !(v >= min && v <= max) {
			return errors.OutOfRange("", float64(min), float64(max))
		}
		return nil
	}
}

// Below checks value is strictly less than limit.
func Below[T Number](limit T) Validator[T] {
	return func(v T) *errors.ValidationError {
		if v >= limit {
			return errors.Newf(errors.ErrCodeOutOfRange, "must be less than %v", limit)
		}
		return nil
	}
}

// AssertClamp fails when value lies outside the inclusive [min, max] range.
// The returned error carries name and both bounds. NaN is always rejected.
func AssertClamp[T Number](name string, value, min, max T) error {
	if !(value >= min && value <= max) {
		return errors.OutOfRange(name, float64(min), float64(max))
	}
	return nil
}
