// Package record provides immutable component records. A Schema names the
// fields of a record through lenses so that callers can copy a record with a
// subset of its fields replaced, by name, and have the result re-validated.
package record

import (
	"sort"

	"github.com/authcorp/typevault/errors"
)

// Schema describes the named fields of record type S, each of type A.
type Schema[S, A any] struct {
	name     string
	order    []string
	fields   map[string]Lens[S, A]
	validate func(S) error
}

// Field pairs a field name with its lens.
type Field[S, A any] struct {
	Name string
	Lens Lens[S, A]
}

// NewSchema builds a schema. validate may be nil; when set it runs on every
// record produced by CopyWith.
func NewSchema[S, A any](name string, validate func(S) error, fields ...Field[S, A]) *Schema[S, A] {
	s := &Schema[S, A]{
		name:     name,
		fields:   make(map[string]Lens[S, A], len(fields)),
		validate: validate,
	}
	for _, f := range fields {
		s.order = append(s.order, f.Name)
		s.fields[f.Name] = f.Lens
	}
	return s
}

// Name returns the record name used in error messages.
func (s *Schema[S, A]) Name() string {
	return s.name
}

// Fields returns field names in declaration order.
func (s *Schema[S, A]) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether name is a field of the record.
func (s *Schema[S, A]) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Get reads a field by name.
func (s *Schema[S, A]) Get(rec S, name string) (A, error) {
	l, ok := s.fields[name]
	if !ok {
		var zero A
		return zero, errors.UnknownField(name, s.name)
	}
	return l.Get(rec), nil
}

// CopyWith returns a copy of rec with the named fields replaced. Unknown names
// fail before anything is applied; the copy is validated before it is returned.
func (s *Schema[S, A]) CopyWith(rec S, overrides map[string]A) (S, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		if _, ok := s.fields[name]; !ok {
			var zero S
			return zero, errors.UnknownField(name, s.name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := rec
	for _, name := range names {
		out = s.fields[name].Set(out, overrides[name])
	}
	if err := s.Validate(out); err != nil {
		var zero S
		return zero, err
	}
	return out, nil
}

// With is CopyWith for a single field.
func (s *Schema[S, A]) With(rec S, name string, v A) (S, error) {
	return s.CopyWith(rec, map[string]A{name: v})
}

// Validate runs the schema's validation hook.
func (s *Schema[S, A]) Validate(rec S) error {
	if s.validate == nil {
		return nil
	}
	return s.validate(rec)
}
