package domain

import (
	"regexp"

	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// e164Regex validates E.164 phone number format.
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var phoneNumberRules = value.Rules[string]{
	Validate: validation.MatchesRegex(e164Regex, "invalid E.164 phone number"),
}

// PhoneNumber is an E.164 number: "+", a non-zero digit, then 1 to 14 digits.
type PhoneNumber struct {
	StringValue
}

// NewPhoneNumber creates a PhoneNumber.
func NewPhoneNumber(raw string, opts ...value.Option) (*PhoneNumber, error) {
	return NewPhoneNumberPtr(&raw, opts...)
}

// NewPhoneNumberPtr creates a PhoneNumber; a nil raw means null.
func NewPhoneNumberPtr(raw *string, opts ...value.Option) (*PhoneNumber, error) {
	p := &PhoneNumber{}
	return construct(p, &p.Value, raw, phoneNumberRules, opts)
}

// NullablePhoneNumber creates a nullable PhoneNumber, null when raw is omitted.
func NullablePhoneNumber(raw ...string) (*PhoneNumber, error) {
	return NewPhoneNumberPtr(value.First(raw), value.Nullable())
}

// ImmutablePhoneNumber creates a PhoneNumber that rejects every later write.
func ImmutablePhoneNumber(raw string) (*PhoneNumber, error) {
	return NewPhoneNumberPtr(&raw, value.Immutable())
}
