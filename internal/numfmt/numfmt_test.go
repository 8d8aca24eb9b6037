package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{12.5, "12.5"},
		{0.1 / 100 * 0.4, "0.0004"},
		{0.1 * 3, "0.3"},
		{255, "255"},
		{1e21, "1000000000000000000000"},
		{-2.25, "-2.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	v, ok := Parse(".5")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = Parse("120")
	assert.True(t, ok)
	assert.Equal(t, 120.0, v)

	for _, bad := range []string{"", ".", "1.2.3", "abc"} {
		_, ok := Parse(bad)
		assert.False(t, ok, bad)
	}
}
