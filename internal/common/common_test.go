package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v4", PkgAlias("xcm-generator/xcm/v4"))
	assert.Equal(t, "v4", PkgAlias("v4"))
	assert.Empty(t, PkgAlias(""))
}

func TestSlices(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty([]string(nil)))
	assert.False(t, IsEmpty([]string{"x"}))

	first, ok := First([]int{3, 4})
	assert.True(t, ok)
	assert.Equal(t, 3, first)

	_, ok = First([]int{})
	assert.False(t, ok)
}
