package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/authcorp/typevault/domain"
	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/value"
)

// normalized is what every registered constructor yields.
type normalized interface {
	fmt.Stringer
	IsNull() bool
}

// constructor builds a value from its raw text; nil raw means null.
type constructor func(raw *string, opts ...value.Option) (normalized, error)

func stringType[V normalized](ctor func(*string, ...value.Option) (V, error)) constructor {
	return func(raw *string, opts ...value.Option) (normalized, error) {
		return errtrace.Wrap2(ctor(raw, opts...))
	}
}

func numberType[V normalized](ctor func(*float64, ...value.Option) (V, error)) constructor {
	return func(raw *string, opts ...value.Option) (normalized, error) {
		if raw == nil {
			return errtrace.Wrap2(ctor(nil, opts...))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
		if err != nil {
			return nil, errtrace.Wrap(errors.Invalid(fmt.Sprintf("%q is not a number", *raw)))
		}
		return errtrace.Wrap2(ctor(&f, opts...))
	}
}

var registry = map[string]constructor{
	"text":           stringType(domain.NewTextPtr),
	"email":          stringType(domain.NewEmailPtr),
	"url":            stringType(domain.NewUrlPtr),
	"uuid":           stringType(domain.NewUuidPtr),
	"phone-number":   stringType(domain.NewPhoneNumberPtr),
	"weekday":        stringType(domain.NewWeekdayPtr),
	"month":          stringType(domain.NewMonthPtr),
	"color-hex":      stringType(domain.NewColorHexPtr),
	"color-rgb":      stringType(domain.NewColorRgbPtr),
	"color-hsl":      stringType(domain.NewColorHslPtr),
	"color-oklch":    stringType(domain.NewColorOklchPtr),
	"date-only":      stringType(domain.NewDateOnlyPtr),
	"date-time":      stringType(domain.NewDateTimePtr),
	"time-only":      stringType(domain.NewTimeOnlyPtr),
	"duration":       stringType(domain.NewDurationPtr),
	"integer":        numberType(domain.NewIntegerPtr),
	"floating-point": numberType(domain.NewFloatingPointPtr),
	"percentage":     numberType(domain.NewPercentagePtr),
	"year":           numberType(domain.NewYearPtr),
}

// typeNames returns the registered type names in sorted order.
func typeNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalize builds a value of the named type and returns its canonical form.
// A null value renders as "null".
func normalize(typeName string, raw *string, opts ...value.Option) (string, error) {
	ctor, ok := registry[typeName]
	if !ok {
		return "", errtrace.Wrap(fmt.Errorf("unknown type %q, run 'typevault types' for the list", typeName))
	}
	v, err := ctor(raw, opts...)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if v.IsNull() {
		return "null", nil
	}
	return v.String(), nil
}
