package qmath

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/wide"

// Largest |x| accepted by [Sin], [Cos] and [CordicSin].
const MaxTrigArgument = 1024

// Taylor coefficients of sin(r)/r and cos(r) in z = r^2.
var sinCoeffs = [...]int64{
	one,
	-(one + fact3/2) / fact3,
	(one + fact5/2) / fact5,
	-(one + fact7/2) / fact7,
	(one + fact9/2) / fact9,
	-(one + fact11/2) / fact11,
	(one + fact13/2) / fact13,
	-(one + fact15/2) / fact15,
	(one + fact17/2) / fact17,
	-(one + fact19/2) / fact19,
}

var cosCoeffs = [...]int64{
	one,
	-(one + fact2/2) / fact2,
	(one + fact4/2) / fact4,
	-(one + fact6/2) / fact6,
	(one + fact8/2) / fact8,
	-(one + fact10/2) / fact10,
	(one + fact12/2) / fact12,
	-(one + fact14/2) / fact14,
	(one + fact16/2) / fact16,
	-(one + fact18/2) / fact18,
}

// Sine of x (in radians). Returns [ErrDomain] when |x| > [MaxTrigArgument].
func Sin[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	quadrant, r, err := reduceHalfPi(x)
	if err != nil { return qformat.Q[F, P]{}, errors.Wrapf(err, "sin(%s)", x) }
	return fromWork[F, P](sinQuadrant(quadrant, r)), nil
}

// Cosine of x (in radians). Returns [ErrDomain] when |x| > [MaxTrigArgument].
func Cos[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	quadrant, r, err := reduceHalfPi(x)
	if err != nil { return qformat.Q[F, P]{}, errors.Wrapf(err, "cos(%s)", x) }
	return fromWork[F, P](sinQuadrant(quadrant + 1, r)), nil
}

// sin(n*pi/2 + r) for |r| <= pi/4. cos(x) is sin(x + pi/2).
func sinQuadrant(n int64, r int64) int64 {
	switch n & 3 {
	case 0: return sinKernel(r)
	case 1: return cosKernel(r)
	case 2: return -sinKernel(r)
	default: return -cosKernel(r)
	}
}

func sinKernel(r int64) int64 {
	return mul60(r, horner(sinCoeffs[:], mul60(r, r)))
}

func cosKernel(r int64) int64 {
	return horner(cosCoeffs[:], mul60(r, r))
}

// Writes x as n*pi/2 + r with |r| <= pi/4 (slightly above due to the
// rounding of n), returning n and r with 60 fractional bits. The
// subtraction is done with 112 fractional bits (Cody-Waite), so r
// keeps full precision even when x is close to a multiple of pi/2.
func reduceHalfPi[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (int64, int64, error) {
	f := fractionBits(x)
	if !withinAbs(x.Raw(), f, MaxTrigArgument) { return 0, 0, ErrDomain }

	n := roundRsh(wide.Mul64(x.Raw(), twoOverPi60), uint(f + workBits)).Int64()
	exact := wide.FromInt64(x.Raw()).Lsh(uint(112 - f))
	r := exact.Sub(halfPi112.MulInt64(n))
	return n, roundRsh(r, 112 - workBits).Int64(), nil
}
