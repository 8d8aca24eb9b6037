package domain_test

import (
	"math"
	"testing"

	"github.com/authcorp/typevault/domain"
	"github.com/authcorp/typevault/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{1.9, 1},
		{-1.9, -1},
		{0.5, 0},
		{42, 42},
		{-9007199254740992, -9007199254740992},
	}

	for _, tt := range tests {
		i, err := domain.NewInteger(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, i.Int64())
	}
}

func TestIntegerRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), math.Ldexp(1, 63), 1e300} {
		_, err := domain.NewInteger(bad)
		assert.Error(t, err, bad)
	}
}

func TestFloatingPoint(t *testing.T) {
	f, err := domain.NewFloatingPoint(1.25)
	require.NoError(t, err)
	assert.Equal(t, 1.25, f.Float64())
	assert.Equal(t, "1.25", f.String())

	_, err = domain.NewFloatingPoint(math.NaN())
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestPercentageBounds(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 1} {
		_, err := domain.NewPercentage(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []float64{-0.0000001, 1.0000001, 2} {
		_, err := domain.NewPercentage(bad)
		assert.ErrorIs(t, err, errors.ErrOutOfRange, bad)
	}
}

func TestYearBounds(t *testing.T) {
	for _, ok := range []float64{0, 2024, 9999} {
		y, err := domain.NewYear(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, int(ok), y.Int())
	}
	for _, bad := range []float64{-1, 10000, 2024.5} {
		_, err := domain.NewYear(bad)
		assert.Error(t, err, bad)
	}
}

func TestNumberNullability(t *testing.T) {
	y, err := domain.NullableYear()
	require.NoError(t, err)
	assert.True(t, y.IsNull())
	assert.Equal(t, "", y.String())
	assert.Equal(t, 0, y.Int())

	_, err = domain.NewYearPtr(nil)
	assert.ErrorIs(t, err, errors.ErrNull)

	i, err := domain.NullableInteger(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), i.Int64())
	require.NoError(t, i.SetNull())
	assert.True(t, i.IsNull())
}

func TestNumberImmutability(t *testing.T) {
	p, err := domain.ImmutablePercentage(0.25)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Set(0.5), errors.ErrImmutable)
	assert.Equal(t, 0.25, p.Float64())
}

func TestNumberFailedWriteKeepsValue(t *testing.T) {
	y, err := domain.NewYear(2000)
	require.NoError(t, err)

	assert.Error(t, y.Set(10000))
	assert.Equal(t, 2000, y.Int())
	require.NoError(t, y.Set(1999))
	assert.Equal(t, 1999, y.Int())
}

func TestNumberRangeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("percentage accepts exactly [0, 1]", prop.ForAll(
		func(v float64) bool {
			_, err := domain.NewPercentage(v)
			return (err == nil) == (v >= 0 && v <= 1)
		},
		gen.Float64Range(-2, 2),
	))

	properties.Property("year accepts exactly whole numbers in [0, 9999]", prop.ForAll(
		func(v int) bool {
			_, err := domain.NewYear(float64(v))
			return (err == nil) == (v >= 0 && v <= 9999)
		},
		gen.IntRange(-20000, 20000),
	))

	properties.Property("integer equals truncation", prop.ForAll(
		func(v float64) bool {
			i, err := domain.NewInteger(v)
			return err == nil && i.Float64() == math.Trunc(v)
		},
		gen.Float64Range(-1e15, 1e15),
	))

	properties.TestingRun(t)
}
