package domain

import "github.com/authcorp/typevault/value"

var textRules = value.Rules[string]{}

// Text accepts any string.
type Text struct {
	StringValue
}

// NewText creates a Text.
func NewText(raw string, opts ...value.Option) (*Text, error) {
	return NewTextPtr(&raw, opts...)
}

// NewTextPtr creates a Text; a nil raw means null.
func NewTextPtr(raw *string, opts ...value.Option) (*Text, error) {
	t := &Text{}
	return construct(t, &t.Value, raw, textRules, opts)
}

// NullableText creates a nullable Text, null when raw is omitted.
func NullableText(raw ...string) (*Text, error) {
	return NewTextPtr(value.First(raw), value.Nullable())
}

// ImmutableText creates a Text that rejects every later write.
func ImmutableText(raw string) (*Text, error) {
	return NewTextPtr(&raw, value.Immutable())
}
