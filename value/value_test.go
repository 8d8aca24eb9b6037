package value_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var upperRules = value.Rules[string]{
	Modify:   strings.ToUpper,
	Validate: validation.Custom(func(s string) bool { return len(s) <= 4 }, "at most 4 characters"),
}

func ptr[T any](v T) *T { return &v }

func TestInitStoresModifiedValue(t *testing.T) {
	v, err := value.New(ptr("abc"), upperRules)
	require.NoError(t, err)

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "ABC", got)
	assert.Equal(t, "ABC", *v.Ptr())
	assert.False(t, v.IsNull())
}

func TestInitRejectsInvalid(t *testing.T) {
	_, err := value.New(ptr("abcdef"), upperRules)
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestInitRunsOnce(t *testing.T) {
	v, err := value.New(ptr("abc"), upperRules, value.Immutable())
	require.NoError(t, err)

	err = v.Init(ptr("zzzzzzzz"), value.Rules[string]{}, value.Nullable())
	assert.ErrorIs(t, err, errors.ErrImmutable)
	assert.Equal(t, "ABC", *v.Ptr())
	assert.True(t, v.IsImmutable())
	assert.False(t, v.IsNullable())

	mutable, err := value.New(ptr("abc"), upperRules)
	require.NoError(t, err)
	assert.ErrorIs(t, mutable.Init(ptr("x"), upperRules, value.Immutable()), errors.ErrImmutable)
	assert.False(t, mutable.IsImmutable())
	require.NoError(t, mutable.Set("xy"))
	assert.Equal(t, "XY", *mutable.Ptr())
}

func TestNullPolicy(t *testing.T) {
	_, err := value.New[string](nil, upperRules)
	assert.ErrorIs(t, err, errors.ErrNull)

	v, err := value.New[string](nil, upperRules, value.Nullable())
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Nil(t, v.Ptr())
	_, ok := v.Get()
	assert.False(t, ok)

	require.NoError(t, v.Set("ab"))
	assert.False(t, v.IsNull())
	require.NoError(t, v.SetNull())
	assert.True(t, v.IsNull())
}

func TestNonNullableRejectsNullWrite(t *testing.T) {
	v, err := value.New(ptr("ab"), upperRules)
	require.NoError(t, err)

	assert.ErrorIs(t, v.SetNull(), errors.ErrNull)
	got, _ := v.Get()
	assert.Equal(t, "AB", got)
}

func TestImmutablePolicy(t *testing.T) {
	v, err := value.New(ptr("ab"), upperRules, value.Immutable())
	require.NoError(t, err)

	assert.ErrorIs(t, v.Set("cd"), errors.ErrImmutable)
	assert.ErrorIs(t, v.SetPtr(nil), errors.ErrImmutable)
	assert.ErrorIs(t, v.AssertMutable(), errors.ErrImmutable)
	got, _ := v.Get()
	assert.Equal(t, "AB", got)
}

func TestImmutableNullableNull(t *testing.T) {
	v, err := value.New[string](nil, upperRules, value.Nullable(), value.Immutable())
	require.NoError(t, err)

	assert.True(t, v.IsNull())
	assert.ErrorIs(t, v.Set("ab"), errors.ErrImmutable)
	assert.True(t, v.IsNull())
}

func TestFailedWriteKeepsPrevious(t *testing.T) {
	v, err := value.New(ptr("ab"), upperRules)
	require.NoError(t, err)

	assert.Error(t, v.Set("toolong"))
	got, _ := v.Get()
	assert.Equal(t, "AB", got)
}

func TestOptions(t *testing.T) {
	v, err := value.New(ptr(1), value.Rules[int]{}, value.WithOptions(value.Options{Nullable: true, Immutable: true}))
	require.NoError(t, err)

	assert.True(t, v.IsNullable())
	assert.True(t, v.IsImmutable())
	assert.Equal(t, value.Options{Nullable: true, Immutable: true}, v.Options())
	assert.Equal(t, value.Options{}, value.NewOptions(nil))
}

func TestFirst(t *testing.T) {
	assert.Nil(t, value.First[int](nil))
	assert.Equal(t, 3, *value.First([]int{3, 4}))
}

type evenOnly struct{}

func (evenOnly) Validate(n int) error {
	if n%2 != 0 {
		return fmt.Errorf("%d is odd", n)
	}
	return nil
}

func (evenOnly) Modify(n int) int { return n * 2 }

type positiveOnly struct{}

func (positiveOnly) Validate(n int) error {
	if n <= 0 {
		return validation.AssertClamp("n", n, 1, 100)
	}
	return nil
}

func TestRulesFrom(t *testing.T) {
	v, err := value.New(ptr(3), value.RulesFrom[int](evenOnly{}))
	require.NoError(t, err)
	got, _ := v.Get()
	assert.Equal(t, 6, got)

	_, err = value.New(ptr(0), value.RulesFrom[int](positiveOnly{}))
	assert.ErrorIs(t, err, errors.ErrOutOfRange)

	_, err = value.New(ptr(5), value.Rules[int]{Validate: value.RulesFrom[int](evenOnly{}).Validate})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalid)
	assert.Contains(t, err.Error(), "5 is odd")
}

// Property: whatever is written, the stored value is either the modified input
// or the previous value when validation failed.
func TestWriteIsAllOrNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v, err := value.New(ptr("a"), upperRules)
		if err != nil {
			t.Fatalf("construct: %v", err)
		}
		writes := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,8}`)).Draw(t, "writes")
		want := "A"
		for _, w := range writes {
			if err := v.Set(w); err == nil {
				want = strings.ToUpper(w)
			}
			got, _ := v.Get()
			if got != want {
				t.Fatalf("after %q: got %q want %q", w, got, want)
			}
		}
	})
}
