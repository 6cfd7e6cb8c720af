package qmath

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/wide"

// Working precision of the kernels: Q3.60 in an int64.
const workBits = 60
const one int64 = 1 << workBits

// Maximum errors of the kernels in ulps of the result format, on top
// of the final rounding step when the policy floors or truncates.
// They hold for formats with up to 56 fractional bits (and, for
// [Exp], results with up to 56 significant bits).
const (
	SqrtMaxULP = 1
	TrigMaxULP = 1
	ExpMaxULP  = 1
	LogMaxULP  = 1
)

// Factorials as constants, so coefficients can be computed by the
// compiler.
const (
	fact2  = 2
	fact3  = fact2 * 3
	fact4  = fact3 * 4
	fact5  = fact4 * 5
	fact6  = fact5 * 6
	fact7  = fact6 * 7
	fact8  = fact7 * 8
	fact9  = fact8 * 9
	fact10 = fact9 * 10
	fact11 = fact10 * 11
	fact12 = fact11 * 12
	fact13 = fact12 * 13
	fact14 = fact13 * 14
	fact15 = fact14 * 15
	fact16 = fact15 * 16
	fact17 = fact16 * 17
	fact18 = fact17 * 18
	fact19 = fact18 * 19
	fact20 = fact19 * 20
)

// (a * b) / 2^60, rounded to nearest. The result must fit an int64.
func mul60(a, b int64) int64 {
	return roundRsh(wide.Mul64(a, b), workBits).Int64()
}

// x / 2^n rounded to nearest, ties up. n must be positive.
func roundRsh(x wide.Int, n uint) wide.Int {
	return x.Add(wide.One().Lsh(n - 1)).Rsh(n)
}

// Evaluates the polynomial with the given coefficients (lowest degree
// first) at z, all of them with 60 fractional bits.
func horner(coeffs []int64, z int64) int64 {
	acc := coeffs[len(coeffs) - 1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = mul60(acc, z) + coeffs[i]
	}
	return acc
}

// Returns whether |raw / 2^fract| <= limit.
func withinAbs(raw int64, fract int, limit int64) bool {
	bound := wide.FromInt64(limit).Lsh(uint(fract))
	return wide.FromInt64(raw).Abs().Cmp(bound) <= 0
}

func fractionBits[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) int {
	return int(x.Spec().FractionBits)
}

// Brings a Q3.60 kernel result into the format of the argument.
func fromWork[F qformat.Format, P qformat.Policy](value int64) qformat.Q[F, P] {
	return qformat.FromScaled[F, P](wide.FromInt64(value), workBits)
}
