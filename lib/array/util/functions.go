package util

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// --------------------------------------------------------------------------
// General Utility Functions
// --------------------------------------------------------------------------

// NextPowerOfTwo returns the smallest power of two >= v (1 for v == 0).
// The result overflows to zero if it does not fit into T.
func NextPowerOfTwo[T constraints.Unsigned](v T) T {
	if v <= 1 {
		return 1
	}
	if IsPowerOfTwo(v) {
		return v
	}
	return T(1) << (bits.Len64(uint64(v-1)))
}

// IsPowerOfTwo reports whether v is a power of two
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// Max returns the larger of a and b
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
