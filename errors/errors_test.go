package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/authcorp/typevault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorIsMatchesByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"null", errors.Null(), errors.ErrNull},
		{"immutable", errors.Immutable(), errors.ErrImmutable},
		{"invalid", errors.Invalid("bad email"), errors.ErrInvalid},
		{"out of range", errors.OutOfRange("red", 0, 255), errors.ErrOutOfRange},
		{"unknown field", errors.UnknownField("purple", "HexChannels"), errors.ErrUnknownField},
		{"type mismatch", errors.TypeMismatch("int", "string"), errors.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
			assert.NotErrorIs(t, tt.err, stderrors.New(tt.err.Error()))
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "[INVALID_VALUE] invalid value", errors.Invalid("").Error())
	assert.Equal(t, "[OUT_OF_RANGE] alpha: Value must be between 0 and 100", errors.OutOfRange("alpha", 0, 100).Error())
	assert.Equal(t, "[OUT_OF_RANGE] chroma: Value must be between 0 and 0.4", errors.OutOfRange("chroma", 0, 0.4).Error())
	assert.Equal(t, "Property 'purple' does not exist", errors.UnknownField("purple", "").Message)
	assert.Equal(t, "Property 'purple' does not exist in HexChannels", errors.UnknownField("purple", "HexChannels").Message)
}

func TestBounds(t *testing.T) {
	min, max, ok := errors.OutOfRange("hue", 0, 360).Bounds()
	require.True(t, ok)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 360.0, max)

	_, _, ok = errors.Invalid("x").Bounds()
	assert.False(t, ok)
}

func TestAsTypeAndCodeOf(t *testing.T) {
	err := fmt.Errorf("setting red: %w", errors.OutOfRange("red", 0, 255))

	ve, ok := errors.AsType[*errors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "red", ve.Field)
	assert.Equal(t, errors.ErrCodeOutOfRange, errors.CodeOf(err))
	assert.True(t, errors.IsValidation(err))

	plain := stderrors.New("boom")
	assert.False(t, errors.IsValidation(plain))
	assert.Equal(t, errors.ErrorCode(""), errors.CodeOf(plain))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 42, errors.Must(42, nil))
	assert.Panics(t, func() {
		errors.Must(0, errors.Null())
	})
}
