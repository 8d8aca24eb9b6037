// Package value implements the generic typed-value container: a single raw
// value guarded by a modifier, a validator and the nullable/immutable policy.
//
// Concrete types embed Value[T] and supply their behaviour as Rules:
//
//	type Email struct{ value.Value[string] }
//
//	func NewEmail(raw string, opts ...value.Option) (*Email, error) {
//	    e := &Email{}
//	    if err := e.Init(&raw, emailRules, opts...); err != nil {
//	        return nil, err
//	    }
//	    return e, nil
//	}
//
// Every successful write stores the modifier's output; a failed write leaves
// the previous value untouched.
package value

import (
	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/validation"
)

// Modifier coerces an incoming value before validation.
type Modifier[T any] func(T) T

// Validatable is implemented by types that gate acceptance of a value.
type Validatable[T any] interface {
	Validate(T) error
}

// Modifiable is implemented by types that normalize incoming values.
type Modifiable[T any] interface {
	Modify(T) T
}

// Rules holds the strategies a concrete type injects into the container.
type Rules[T any] struct {
	Modify   Modifier[T]
	Validate validation.Validator[T]
}

// RulesFrom builds Rules from a type implementing Validatable and, optionally, Modifiable.
func RulesFrom[T any](v Validatable[T]) Rules[T] {
	r := Rules[T]{
		Validate: func(x T) *errors.ValidationError {
			err := v.Validate(x)
			if err == nil {
				return nil
			}
			if ve, ok := errors.AsType[*errors.ValidationError](err); ok {
				return ve
			}
			return errors.Invalid(err.Error())
		},
	}
	if m, ok := v.(Modifiable[T]); ok {
		r.Modify = m.Modify
	}
	return r
}

func (r Rules[T]) apply(raw T) (T, *errors.ValidationError) {
	v := raw
	if r.Modify != nil {
		v = r.Modify(v)
	}
	if r.Validate != nil {
		if err := r.Validate(v); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// Value is the generic container. The zero Value is an uninitialized, non-nullable,
// mutable value holding null; call Init before use.
type Value[T any] struct {
	val         T
	null        bool
	opts        Options
	rules       Rules[T]
	initialized bool
}

// Init constructs the value from raw. A nil raw means null. Init succeeds at
// most once; later calls fail with an immutable error and change nothing.
func (v *Value[T]) Init(raw *T, rules Rules[T], opts ...Option) error {
	if v.initialized {
		return errors.New(errors.ErrCodeImmutable, "value is already initialized")
	}
	v.opts = NewOptions(opts...)
	v.rules = rules
	v.null = true
	if err := v.assign(raw); err != nil {
		return err
	}
	v.initialized = true
	return nil
}

// New creates a standalone container.
func New[T any](raw *T, rules Rules[T], opts ...Option) (*Value[T], error) {
	v := &Value[T]{}
	if err := v.Init(raw, rules, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the stored value and false when it is null.
func (v *Value[T]) Get() (T, bool) {
	if v.null {
		var zero T
		return zero, false
	}
	return v.val, true
}

// Ptr returns a copy of the stored value, or nil when it is null.
func (v *Value[T]) Ptr() *T {
	if v.null {
		return nil
	}
	c := v.val
	return &c
}

// IsNull reports whether the value holds null.
func (v *Value[T]) IsNull() bool {
	return v.null
}

// Set assigns a new non-null value.
func (v *Value[T]) Set(raw T) error {
	return v.SetPtr(&raw)
}

// SetNull assigns null.
func (v *Value[T]) SetNull() error {
	return v.SetPtr(nil)
}

// SetPtr assigns raw, where nil means null.
func (v *Value[T]) SetPtr(raw *T) error {
	if v.initialized {
		if err := v.AssertMutable(); err != nil {
			return err
		}
	}
	return v.assign(raw)
}

// AssertMutable fails when the value is immutable.
func (v *Value[T]) AssertMutable() error {
	if v.opts.Immutable {
		return errors.Immutable()
	}
	return nil
}

// IsNullable reports the nullable policy.
func (v *Value[T]) IsNullable() bool {
	return v.opts.Nullable
}

// IsImmutable reports the immutable policy.
func (v *Value[T]) IsImmutable() bool {
	return v.opts.Immutable
}

// Options returns the policy flags.
func (v *Value[T]) Options() Options {
	return v.opts
}

func (v *Value[T]) assign(raw *T) error {
	if raw == nil {
		if !v.opts.Nullable {
			return errors.Null()
		}
		var zero T
		v.val, v.null = zero, true
		return nil
	}
	modified, err := v.rules.apply(*raw)
	if err != nil {
		return err
	}
	v.val, v.null = modified, false
	return nil
}
