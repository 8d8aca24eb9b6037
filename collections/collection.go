// Package collections provides a type-tagged ordered sequence for typed values.
package collections

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/authcorp/typevault/errors"
)

// Collection is a mutable ordered sequence whose elements all share the declared
// element type T. Type reports the tag; PushAny enforces it at runtime for
// values whose static type is unknown.
type Collection[T comparable] struct {
	tag   string
	items []T
}

// New creates a collection holding items.
func New[T comparable](items ...T) *Collection[T] {
	c := &Collection[T]{tag: typeTag[T]()}
	c.Push(items...)
	return c
}

// FromAny creates a collection from untyped items, failing on the first element
// that is not a T.
func FromAny[T comparable](items ...any) (*Collection[T], error) {
	c := New[T]()
	if err := c.PushAny(items...); err != nil {
		return nil, err
	}
	return c, nil
}

func typeTag[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Type returns the declared element type tag.
func (c *Collection[T]) Type() string {
	return c.tag
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Push appends items.
func (c *Collection[T]) Push(items ...T) {
	c.items = append(c.items, items...)
}

// PushAny appends items after checking each is a T. Nothing is appended when
// any element has the wrong type.
func (c *Collection[T]) PushAny(items ...any) error {
	typed := make([]T, 0, len(items))
	for _, item := range items {
		v, ok := item.(T)
		if !ok {
			return errors.TypeMismatch(c.tag, fmt.Sprintf("%T", item))
		}
		typed = append(typed, v)
	}
	c.Push(typed...)
	return nil
}

// Unshift prepends items.
func (c *Collection[T]) Unshift(items ...T) {
	c.items = append(slices.Clone(items), c.items...)
}

// Pop removes and returns the last element.
func (c *Collection[T]) Pop() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	last := c.items[len(c.items)-1]
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
	return last, true
}

// Shift removes and returns the first element.
func (c *Collection[T]) Shift() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	first := c.items[0]
	c.items = slices.Delete(c.items, 0, 1)
	return first, true
}

// Concat appends every element of other. Both collections must share a type tag.
func (c *Collection[T]) Concat(other *Collection[T]) error {
	if other.tag != c.tag {
		return errors.TypeMismatch(c.tag, other.tag)
	}
	c.Push(other.items...)
	return nil
}

// Clone returns a shallow copy.
func (c *Collection[T]) Clone() *Collection[T] {
	return &Collection[T]{tag: c.tag, items: slices.Clone(c.items)}
}

// Every reports whether fn holds for all elements.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	for _, item := range c.items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one element.
func (c *Collection[T]) Some(fn func(T) bool) bool {
	return slices.ContainsFunc(c.items, fn)
}

// Filter returns a new collection with the elements fn keeps.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	out := &Collection[T]{tag: c.tag}
	for _, item := range c.items {
		if fn(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Find returns the first element fn accepts.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	if i := c.FindIndex(fn); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element fn accepts, or -1.
func (c *Collection[T]) FindIndex(fn func(T) bool) int {
	return slices.IndexFunc(c.items, fn)
}

// ForEach calls fn for every element in order.
func (c *Collection[T]) ForEach(fn func(T)) {
	for _, item := range c.items {
		fn(item)
	}
}

// Includes reports whether v is an element.
func (c *Collection[T]) Includes(v T) bool {
	return slices.Contains(c.items, v)
}

// IndexOf returns the first index of v, or -1.
func (c *Collection[T]) IndexOf(v T) int {
	return slices.Index(c.items, v)
}

// LastIndexOf returns the last index of v, or -1.
func (c *Collection[T]) LastIndexOf(v T) int {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i] == v {
			return i
		}
	}
	return -1
}

// Reverse reverses the collection in place.
func (c *Collection[T]) Reverse() *Collection[T] {
	slices.Reverse(c.items)
	return c
}

// Sort sorts the collection in place with a stable sort.
func (c *Collection[T]) Sort(cmp func(a, b T) int) *Collection[T] {
	slices.SortStableFunc(c.items, cmp)
	return c
}

// Splice removes deleteCount elements starting at start and returns them as a
// new collection. Out-of-range arguments are clamped.
func (c *Collection[T]) Splice(start, deleteCount int) *Collection[T] {
	n := len(c.items)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end := min(start+max(deleteCount, 0), n)

	removed := &Collection[T]{tag: c.tag, items: slices.Clone(c.items[start:end])}
	c.items = slices.Delete(c.items, start, end)
	return removed
}

// Values returns a copy of the elements.
func (c *Collection[T]) Values() []T {
	return slices.Clone(c.items)
}

// String joins the elements' string forms with ", ".
func (c *Collection[T]) String() string {
	parts := Map(c, func(item T) string { return fmt.Sprint(item) })
	return strings.Join(parts, ", ")
}

// Map applies fn to every element.
func Map[T comparable, U any](c *Collection[T], fn func(T) U) []U {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return out
}

// Reduce folds the elements left to right.
func Reduce[T comparable, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	acc := initial
	for _, item := range c.items {
		acc = fn(acc, item)
	}
	return acc
}
