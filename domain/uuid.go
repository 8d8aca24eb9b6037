package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

// uuidRegex validates the 8-4-4-4-12 layout with a decimal version nibble.
var uuidRegex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9][0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`)

const nilUuid = "00000000-0000-0000-0000-000000000000"

var uuidRules = value.Rules[string]{
	Validate: validation.MatchesRegex(uuidRegex, "invalid UUID format"),
}

// Uuid is a UUID in canonical hyphenated form. Case is preserved.
type Uuid struct {
	StringValue
}

// NewUuid creates a Uuid.
func NewUuid(raw string, opts ...value.Option) (*Uuid, error) {
	return NewUuidPtr(&raw, opts...)
}

// NewUuidPtr creates a Uuid; a nil raw means null.
func NewUuidPtr(raw *string, opts ...value.Option) (*Uuid, error) {
	u := &Uuid{}
	return construct(u, &u.Value, raw, uuidRules, opts)
}

// NullableUuid creates a nullable Uuid, null when raw is omitted.
func NullableUuid(raw ...string) (*Uuid, error) {
	return NewUuidPtr(value.First(raw), value.Nullable())
}

// ImmutableUuid creates a Uuid that rejects every later write.
func ImmutableUuid(raw string) (*Uuid, error) {
	return NewUuidPtr(&raw, value.Immutable())
}

// RandomUuid generates a version 4 UUID from crypto/rand. Byte 6 carries
// version 4 and byte 8 the RFC 4122 variant bits. It panics only when the
// system random source fails.
func RandomUuid(opts ...value.Option) *Uuid {
	return errors.Must(NewUuid(uuid.New().String(), opts...))
}

// NilUuid returns the all-zero UUID.
func NilUuid(opts ...value.Option) *Uuid {
	return errors.Must(NewUuid(nilUuid, opts...))
}

// IsNil reports whether the value is the all-zero UUID.
func (u *Uuid) IsNil() bool {
	return u.String() == nilUuid
}

// Bytes returns the 16 bytes of the UUID, or false when null.
func (u *Uuid) Bytes() ([16]byte, bool) {
	s, ok := u.Get()
	if !ok {
		return [16]byte{}, false
	}
	parsed, err := uuid.Parse(strings.ToLower(s))
	if err != nil {
		return [16]byte{}, false
	}
	return parsed, true
}
