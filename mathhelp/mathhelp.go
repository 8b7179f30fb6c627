package mathhelp

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

func Pow2(n uint) uint {
	return 1 << n
}

// IsPow2 reports whether n is a (positive) power of two
func IsPow2[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 returns the exponent of a power of two. For other values it is floor(log2(n)).
func Log2(n uint) uint {
	if n == 0 {
		return 0
	}
	return uint(bits.Len(n) - 1)
}

func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
