package domain

import (
	"fmt"
	"strconv"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/internal/numfmt"
	"github.com/authcorp/typevault/record"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// StringValue is the base of every string-backed type.
type StringValue struct {
	value.Value[string]
}

// String returns the canonical value, or "" when null.
func (s *StringValue) String() string {
	v, _ := s.Get()
	return v
}

// NumberValue is the base of every number-backed type.
type NumberValue struct {
	value.Value[float64]
}

// Float64 returns the stored number, or 0 when null.
func (n *NumberValue) Float64() float64 {
	v, _ := n.Get()
	return v
}

// String returns the shortest decimal form of the number, or "" when null.
func (n *NumberValue) String() string {
	v, ok := n.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func construct[W any, T any](w *W, base *value.Value[T], raw *T, rules value.Rules[T], opts []value.Option) (*W, error) {
	if err := base.Init(raw, rules, opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// writeComponent replaces one named field of the parsed record and assigns the
// re-rendered canonical string.
func writeComponent[S fmt.Stringer, A any](v *value.Value[string], schema *record.Schema[S, A], current S, name string, x A) error {
	if err := v.AssertMutable(); err != nil {
		return err
	}
	next, err := schema.With(current, name, x)
	if err != nil {
		return err
	}
	return v.Set(next.String())
}

// composite is the rule set of a type whose canonical string renders a
// parsed record R.
type composite[R fmt.Stringer] struct {
	parse   func(string) (R, bool)
	check   func(R) error
	message string
}

// Modify normalizes input that parse accepts into its rendered form and
// leaves anything else unchanged for Validate to reject.
func (c composite[R]) Modify(s string) string {
	r, ok := c.parse(s)
	if !ok {
		return s
	}
	return r.String()
}

// Validate accepts a string only when it parses and its record passes check.
func (c composite[R]) Validate(s string) error {
	r, ok := c.parse(s)
	if !ok {
		return errors.Invalid(c.message)
	}
	return c.check(r)
}

func compositeRules[R fmt.Stringer](parse func(string) (R, bool), check func(R) error, message string) value.Rules[string] {
	return value.RulesFrom[string](composite[R]{parse: parse, check: check, message: message})
}

// components parses the current value, falling back to def when it is null.
func components[R any](s *StringValue, parse func(string) (R, bool), def R) R {
	v, ok := s.Get()
	if !ok {
		return def
	}
	r, ok := parse(v)
	if !ok {
		return def
	}
	return r
}

type bound struct {
	name     string
	v        float64
	min, max float64
}

// checkBounds asserts every component in order and returns the first failure.
func checkBounds(bounds ...bound) error {
	for _, b := range bounds {
		if err := validation.AssertClamp(b.name, b.v, b.min, b.max); err != nil {
			return err
		}
	}
	return nil
}

// floatField builds a schema field over a float64 component.
func floatField[S any](name string, get func(S) float64, set func(S, float64) S) record.Field[S, float64] {
	return record.FieldOf(name, get, set)
}

// intField builds a schema field over an int component.
func intField[S any](name string, get func(S) int, set func(S, int) S) record.Field[S, int] {
	return record.FieldOf(name, get, set)
}

// numeral reads an optional regex-matched numeral: an empty group yields def.
// A numeral that does not fit a float64 fails instead of reading as 0.
func numeral(s string, def float64) (float64, bool) {
	if s == "" {
		return def, true
	}
	return numfmt.Parse(s)
}

// atoi reads a regex-matched digit run; an empty group reads as 0.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
