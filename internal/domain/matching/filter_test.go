package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterKeepsOrderAndCopies(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}

	got := Filter(items, func(v int) bool { return v%2 == 1 }, nil)

	assert.Equal(t, []int{5, 1, 3}, got)
	got[0] = 99
	assert.Equal(t, []int{5, 1, 4, 2, 3}, items)
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter[int](nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRange(t *testing.T) {
	lo, hi := 1.0, 3.0

	assert.True(t, Range{}.Contains(-100))
	assert.True(t, Range{Min: &lo, Max: &hi}.Contains(1))
	assert.True(t, Range{Min: &lo, Max: &hi}.Contains(3))
	assert.False(t, Range{Min: &lo, Max: &hi}.Contains(3.01))
	assert.False(t, Range{Min: &lo}.Contains(0.99))
}

func TestBypass(t *testing.T) {
	for _, s := range []string{"", " ", "all", "ANY", " Any "} {
		assert.True(t, Bypass(s), s)
	}
	assert.False(t, Bypass("Electronics"))
}
