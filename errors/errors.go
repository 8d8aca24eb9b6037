// Package errors provides the single validation error kind shared by every
// typevault package, with generic helpers for inspecting error chains.
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode identifies why a validation failed.
type ErrorCode string

// Error codes for all validation failures.
const (
	ErrCodeNull         ErrorCode = "NULL_VALUE"
	ErrCodeImmutable    ErrorCode = "IMMUTABLE_VALUE"
	ErrCodeInvalid      ErrorCode = "INVALID_VALUE"
	ErrCodeOutOfRange   ErrorCode = "OUT_OF_RANGE"
	ErrCodeUnknownField ErrorCode = "UNKNOWN_FIELD"
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Sentinels usable with errors.Is; they match any ValidationError with the same code.
var (
	ErrNull         = &ValidationError{Code: ErrCodeNull, Message: "value cannot be null"}
	ErrImmutable    = &ValidationError{Code: ErrCodeImmutable, Message: "value is immutable"}
	ErrInvalid      = &ValidationError{Code: ErrCodeInvalid, Message: "invalid value"}
	ErrOutOfRange   = &ValidationError{Code: ErrCodeOutOfRange, Message: "value out of range"}
	ErrUnknownField = &ValidationError{Code: ErrCodeUnknownField, Message: "unknown field"}
	ErrTypeMismatch = &ValidationError{Code: ErrCodeTypeMismatch, Message: "type mismatch"}
)

// ValidationError is returned by every failed construction or mutation.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
	Min     *float64
	Max     *float64
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is a ValidationError carrying the same code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Bounds returns the inclusive range attached to an out-of-range error.
func (e *ValidationError) Bounds() (min, max float64, ok bool) {
	if e.Min == nil || e.Max == nil {
		return 0, 0, false
	}
	return *e.Min, *e.Max, true
}

// New creates a ValidationError with the given code and message.
func New(code ErrorCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Newf creates a ValidationError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *ValidationError {
	return New(code, fmt.Sprintf(format, args...))
}

// Null reports a null assignment to a non-nullable value.
func Null() *ValidationError {
	return New(ErrCodeNull, "value cannot be null")
}

// Immutable reports a write to an immutable value.
func Immutable() *ValidationError {
	return New(ErrCodeImmutable, "value is immutable")
}

// Invalid reports a value rejected by its validator.
func Invalid(message string) *ValidationError {
	if message == "" {
		message = "invalid value"
	}
	return New(ErrCodeInvalid, message)
}

// OutOfRange reports a value outside the inclusive [min, max] range.
func OutOfRange(field string, min, max float64) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeOutOfRange,
		Field:   field,
		Message: "Value must be between " + formatBound(min) + " and " + formatBound(max),
		Min:     &min,
		Max:     &max,
	}
}

// UnknownField reports a CopyWith override naming a field the record lacks.
func UnknownField(field, record string) *ValidationError {
	msg := fmt.Sprintf("Property '%s' does not exist", field)
	if record != "" {
		msg += " in " + record
	}
	return &ValidationError{Code: ErrCodeUnknownField, Field: field, Message: msg}
}

// TypeMismatch reports an element whose type differs from a collection's declared type.
func TypeMismatch(want, got string) *ValidationError {
	return Newf(ErrCodeTypeMismatch, "expected element of type %s, got %s", want, got)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	_, ok := AsType[*ValidationError](err)
	return ok
}

// CodeOf returns the code of the first ValidationError in err's chain.
func CodeOf(err error) ErrorCode {
	if ve, ok := AsType[*ValidationError](err); ok {
		return ve.Code
	}
	return ""
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
