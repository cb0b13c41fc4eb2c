package circuit

import (
	"fmt"
	"math/bits"
	"strings"
)

// DecodeIndex expands a basis index into an n-bit vector using the canonical
// convention: x[i] = bit i of k = the value of qubit i.
func DecodeIndex(k, n int) []int {
	x := make([]int, n)
	for i := 0; i < n; i++ {
		x[i] = (k >> i) & 1
	}
	return x
}

// HammingWeight returns the number of set bits in a basis index.
func HammingWeight(k int) int {
	return bits.OnesCount(uint(k))
}

// FormatBits renders a bit vector as a string in asset order: character i is
// x[i] ("0110" means assets 1 and 2 are selected).
func FormatBits(x []int) string {
	var sb strings.Builder
	sb.Grow(len(x))
	for _, bit := range x {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// ParseBits parses an asset-order bitstring produced by FormatBits.
func ParseBits(s string) ([]int, error) {
	x := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			x[i] = 0
		case '1':
			x[i] = 1
		default:
			return nil, fmt.Errorf("invalid bitstring %q: character %d is not 0/1", s, i)
		}
	}
	return x, nil
}

// SetBits returns the indices of the set bits in asset order.
func SetBits(x []int) []int {
	var indices []int
	for i, bit := range x {
		if bit == 1 {
			indices = append(indices, i)
		}
	}
	return indices
}
