package collections_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/authcorp/typevault/collections"
	"github.com/authcorp/typevault/errors"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeTag(t *testing.T) {
	assert.Equal(t, "int", collections.New[int]().Type())
	assert.Equal(t, "string", collections.New("a").Type())
}

func TestPushAny(t *testing.T) {
	c := collections.New(1, 2)

	require.NoError(t, c.PushAny(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())

	err := c.PushAny(5, "six")
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "expected element of type int, got string")
	assert.Equal(t, 4, c.Len())

	_, err = collections.FromAny[string]("a", 1)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	fromAny, err := collections.FromAny[string]("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a, b", fromAny.String())
}

func TestStackAndQueueOperations(t *testing.T) {
	c := collections.New(2, 3)
	c.Unshift(0, 1)
	c.Push(4)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, c.Values())

	last, ok := c.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, last)

	first, ok := c.Shift()
	assert.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, []int{1, 2, 3}, c.Values())

	empty := collections.New[int]()
	_, ok = empty.Pop()
	assert.False(t, ok)
	_, ok = empty.Shift()
	assert.False(t, ok)
}

func TestQueries(t *testing.T) {
	c := collections.New("mon", "tue", "wed", "tue")
	isTue := func(s string) bool { return s == "tue" }

	assert.True(t, c.Includes("wed"))
	assert.False(t, c.Includes("sun"))
	assert.Equal(t, 1, c.IndexOf("tue"))
	assert.Equal(t, 3, c.LastIndexOf("tue"))
	assert.Equal(t, -1, c.IndexOf("sun"))
	assert.Equal(t, -1, c.LastIndexOf("sun"))
	assert.Equal(t, 1, c.FindIndex(isTue))
	assert.True(t, c.Some(isTue))
	assert.False(t, c.Every(isTue))
	assert.True(t, c.Every(func(s string) bool { return len(s) == 3 }))

	found, ok := c.Find(func(s string) bool { return strings.HasPrefix(s, "w") })
	assert.True(t, ok)
	assert.Equal(t, "wed", found)
	_, ok = c.Find(func(s string) bool { return s == "sun" })
	assert.False(t, ok)

	assert.Equal(t, []string{"tue", "tue"}, c.Filter(isTue).Values())
	assert.Equal(t, "string", c.Filter(isTue).Type())
}

func TestTransformations(t *testing.T) {
	c := collections.New(3, 1, 2)

	assert.Equal(t, []int{6, 2, 4}, collections.Map(c, func(n int) int { return n * 2 }))
	assert.Equal(t, 6, collections.Reduce(c, func(acc, n int) int { return acc + n }, 0))

	var seen []int
	c.ForEach(func(n int) { seen = append(seen, n) })
	assert.Equal(t, []int{3, 1, 2}, seen)

	assert.Equal(t, []int{1, 2, 3}, c.Clone().Sort(cmp.Compare[int]).Values())
	assert.Equal(t, []int{3, 1, 2}, c.Values())
	assert.Equal(t, []int{2, 1, 3}, c.Reverse().Values())
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name        string
		start, del  int
		wantRemoved []int
		wantLeft    []int
	}{
		{"middle", 1, 2, []int{1, 2}, []int{0, 3, 4}},
		{"negative start", -2, 1, []int{3}, []int{0, 1, 2, 4}},
		{"past end", 10, 3, []int{}, []int{0, 1, 2, 3, 4}},
		{"count past end", 3, 10, []int{3, 4}, []int{0, 1, 2}},
		{"negative count", 1, -1, []int{}, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collections.New(0, 1, 2, 3, 4)
			removed := c.Splice(tt.start, tt.del)
			if diff := gocmp.Diff(tt.wantRemoved, removed.Values()); diff != "" {
				t.Errorf("removed mismatch (-want +got):\n%s", diff)
			}
			if diff := gocmp.Diff(tt.wantLeft, c.Values()); diff != "" {
				t.Errorf("remaining mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	a := collections.New(1, 2)
	require.NoError(t, a.Concat(collections.New(3)))
	assert.Equal(t, "1, 2, 3", a.String())
}
