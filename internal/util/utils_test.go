package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size  int
		offset, lim int
	}{
		{page: 1, size: 10, offset: 0, lim: 10},
		{page: 3, size: 10, offset: 20, lim: 10},
		{page: 0, size: 0, offset: 0, lim: DefaultPageSize},
		{page: 2, size: 1000, offset: MaxPageSize, lim: MaxPageSize},
		{page: 100000000000000000, size: 100, offset: (math.MaxInt/100 - 1) * 100, lim: 100},
		{page: math.MaxInt, size: 1, offset: math.MaxInt - 1, lim: 1},
	}
	for _, tt := range tests {
		off, lim := Calculate(tt.page, tt.size)
		assert.GreaterOrEqual(t, off, 0)
		assert.Equal(t, tt.offset, off)
		assert.Equal(t, tt.lim, lim)
	}
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("seven", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
}

func TestMeta(t *testing.T) {
	t.Parallel()
	m := Meta(2, 5, 5, 8)
	assert.EqualValues(t, 2, m["total_pages"])
	assert.Equal(t, true, m["has_prev"])
	assert.Equal(t, false, m["has_next"])
}

func TestMeta_LastPageOfHugeOffset(t *testing.T) {
	t.Parallel()
	off, lim := Calculate(math.MaxInt, 1)
	m := Meta(math.MaxInt, off, lim, 8)
	assert.Equal(t, false, m["has_next"])
	assert.Equal(t, true, m["has_prev"])
}
