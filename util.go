package huffman

import (
	mathbits "math/bits"
)

// addWeight returns a+b, and false if the sum does not fit in a uint64.
func addWeight(a, b uint64) (uint64, bool) {
	sum, carry := mathbits.Add64(a, b, 0)
	return sum, carry == 0
}

// stackHint guesses the traversal stack depth for a tree with n leaves.  The
// result is only a capacity hint; degenerate trees grow past it.
func stackHint(n int) int {
	return 2 * mathbits.Len(uint(n))
}
