package productControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceRange(t *testing.T) {
	min, max, ok := parsePriceRange("1000-50000")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, min)
	assert.Equal(t, 50000.0, max)
}

func TestParsePriceRange_Invalid(t *testing.T) {
	cases := []string{"", "1000", "abc-def", "5000-100"}
	for _, c := range cases {
		_, _, ok := parsePriceRange(c)
		assert.False(t, ok, "expected %q to be rejected", c)
	}
}
