package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIndex(t *testing.T) {
	assert.Equal(t, []int{1, 1, 0, 0}, DecodeIndex(3, 4))
	assert.Equal(t, []int{0, 1, 0, 1}, DecodeIndex(10, 4))
	assert.Equal(t, []int{0, 0, 0, 0}, DecodeIndex(0, 4))
}

func TestFormatAndParseBits(t *testing.T) {
	x := []int{0, 1, 1, 0}
	s := FormatBits(x)
	assert.Equal(t, "0110", s)

	parsed, err := ParseBits(s)
	require.NoError(t, err)
	assert.Equal(t, x, parsed)

	_, err = ParseBits("01x0")
	assert.Error(t, err)
}

func TestHammingWeight(t *testing.T) {
	assert.Equal(t, 0, HammingWeight(0))
	assert.Equal(t, 2, HammingWeight(3))
	assert.Equal(t, 3, HammingWeight(0b1011))
}

func TestSetBits(t *testing.T) {
	assert.Equal(t, []int{1, 2}, SetBits([]int{0, 1, 1, 0}))
	assert.Nil(t, SetBits([]int{0, 0, 0}))
}
