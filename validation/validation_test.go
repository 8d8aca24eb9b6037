package validation_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/validation"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinators(t *testing.T) {
	lower := validation.MatchesRegex(regexp.MustCompile(`^[a-z]+$`), "lowercase only")
	short := validation.Custom(func(s string) bool { return len(s) <= 5 }, "too long")

	both := validation.And(lower, short)
	assert.Nil(t, both("abc"))
	assert.Equal(t, "lowercase only", both("ABC").Message)
	assert.Equal(t, "too long", both("abcdefg").Message)

	either := validation.Or(lower, short)
	assert.Nil(t, either("ABC"))
	assert.Nil(t, either("abcdefg"))
	assert.NotNil(t, either("ABCDEFG"))
	assert.NotNil(t, validation.Or[string]()("x"))
}

func TestStringValidators(t *testing.T) {
	oneOf := validation.OneOf("monday", "tuesday")
	assert.Nil(t, oneOf("monday"))
	assert.ErrorIs(t, oneOf("Monday"), errors.ErrInvalid)
}

func TestNumericValidators(t *testing.T) {
	finite := validation.Finite()
	assert.Nil(t, finite(1.5))
	assert.NotNil(t, finite(math.NaN()))
	assert.NotNil(t, finite(math.Inf(1)))
	assert.NotNil(t, finite(math.Inf(-1)))

	integral := validation.Integral()
	assert.Nil(t, integral(2024))
	assert.NotNil(t, integral(2024.5))

	inRange := validation.InRange(0.0, 1.0)
	assert.Nil(t, inRange(0))
	assert.Nil(t, inRange(1))
	assert.ErrorIs(t, inRange(1.0000001), errors.ErrOutOfRange)
	assert.ErrorIs(t, inRange(-0.0000001), errors.ErrOutOfRange)
	assert.ErrorIs(t, inRange(math.NaN()), errors.ErrOutOfRange)

	below := validation.Below(10)
	assert.Nil(t, below(9))
	assert.ErrorIs(t, below(10), errors.ErrOutOfRange)
}

func TestAssertClamp(t *testing.T) {
	require.NoError(t, validation.AssertClamp("red", 255, 0, 255))

	err := validation.AssertClamp("red", 256, 0, 255)
	require.Error(t, err)
	ve, ok := errors.AsType[*errors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "red", ve.Field)
	assert.Equal(t, "Value must be between 0 and 255", ve.Message)
	min, max, ok := ve.Bounds()
	require.True(t, ok)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 255.0, max)

	assert.Error(t, validation.AssertClamp("alpha", math.NaN(), 0, 100))
}

func TestAssertClampProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("accepts exactly the inclusive range", prop.ForAll(
		func(v float64) bool {
			err := validation.AssertClamp("hue", v, 0, 360)
			inside := v >= 0 && v <= 360
			return (err == nil) == inside
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
