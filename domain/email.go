package domain

import (
	"regexp"
	"strings"

	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// emailRegex is a simplified RFC 5322 address: a dot-atom local part and a
// domain of at least two labels.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

var emailRules = value.Rules[string]{
	Validate: validation.And(
		validation.Custom(func(s string) bool { return len(s) <= 254 }, "email exceeds maximum length of 254 characters"),
		validation.MatchesRegex(emailRegex, "invalid email format"),
		validation.Custom(func(s string) bool { return len(s[:strings.LastIndexByte(s, '@')]) <= 64 }, "email local part exceeds 64 characters"),
	),
}

// Email is an email address. The value is kept as given; it is not lowercased.
type Email struct {
	StringValue
}

// NewEmail creates an Email.
func NewEmail(raw string, opts ...value.Option) (*Email, error) {
	return NewEmailPtr(&raw, opts...)
}

// NewEmailPtr creates an Email; a nil raw means null.
func NewEmailPtr(raw *string, opts ...value.Option) (*Email, error) {
	e := &Email{}
	return construct(e, &e.Value, raw, emailRules, opts)
}

// NullableEmail creates a nullable Email, null when raw is omitted.
func NullableEmail(raw ...string) (*Email, error) {
	return NewEmailPtr(value.First(raw), value.Nullable())
}

// ImmutableEmail creates an Email that rejects every later write.
func ImmutableEmail(raw string) (*Email, error) {
	return NewEmailPtr(&raw, value.Immutable())
}

// LocalPart returns the part before the @, or "" when null.
func (e *Email) LocalPart() string {
	local, _, _ := strings.Cut(e.String(), "@")
	return local
}

// Domain returns the part after the @, or "" when null.
func (e *Email) Domain() string {
	_, domain, _ := strings.Cut(e.String(), "@")
	return domain
}
