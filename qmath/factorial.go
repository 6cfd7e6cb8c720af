package qmath

import "math/big"
import "math/bits"

var factorials = [...]uint64{
	1, 1, fact2, fact3, fact4, fact5, fact6, fact7, fact8, fact9, fact10,
	fact11, fact12, fact13, fact14, fact15, fact16, fact17, fact18, fact19,
	fact20,
}

// Returns n!. The function panics if n is negative or above 20, as
// 21! doesn't fit an uint64.
func Factorial(n int) uint64 {
	if n < 0 || n >= len(factorials) {
		panic("qmath.Factorial: n must be in [0, 20]")
	}
	return factorials[n]
}

// Returns the number of bits needed to store n!. Useful to decide how
// many Taylor terms a given working precision can still resolve.
// The function panics if n is negative.
func FactorialBitWidth(n int) int {
	if n < 0 { panic("qmath.FactorialBitWidth: negative n") }
	if n < len(factorials) { return bits.Len64(factorials[n]) }
	return new(big.Int).MulRange(1, int64(n)).BitLen()
}
