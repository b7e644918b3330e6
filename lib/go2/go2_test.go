package go2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMax(t *testing.T) {
	assert.Equal(t, "b", Max("a", "b"))
	assert.Equal(t, -3, Max(-3, -7))
	assert.Equal(t, 42., Max(42., 1))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"x", "y"}, "y"))
	assert.False(t, Contains([]string{"x", "y"}, "z"))
	assert.Equal(t, 3, *Pointer(3))
}
