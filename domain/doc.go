// Package domain provides branded scalar value types with built-in validation.
//
// Every type wraps a single canonical string or number in a value.Value
// container, so all of them share the same contract: a raw input is first
// normalized by the type's modifier, then checked by its validator, and only
// then stored. Nullability and immutability are per-instance options fixed at
// construction.
//
//   - Numbers: Integer, FloatingPoint, Percentage, Year
//   - Strings: Text, Email, Url, Uuid, PhoneNumber
//   - Enumerations: Weekday, Month (shared immutable singletons per name)
//   - Colors: ColorHex (#rrggbbaa), ColorRgb, ColorHsl, ColorOklch
//   - Calendar: DateOnly, DateTime (UTC), TimeOnly, Duration
//
// Composite types never store their components. Red, Hue, Year and friends
// parse the canonical string on every read; SetRed and friends parse, replace
// one field, re-render and assign the whole string.
//
// Example usage:
//
//	c, err := domain.NewColorHex("#f00")
//	if err != nil {
//	    // Handle validation error
//	}
//	c.String()      // "#ff0000ff"
//	_ = c.SetAlpha(128)
//	c.String()      // "#ff000080"
//
//	y, _ := domain.ImmutableYear(2024)
//	err = y.Set(2025) // errors.ErrImmutable
//
// Each type offers four constructors: NewX(raw, opts...), NewXPtr(raw, opts...)
// where a nil raw means null, NullableX(raw...) and ImmutableX(raw).
package domain
