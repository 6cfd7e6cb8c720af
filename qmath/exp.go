package qmath

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/wide"

// Largest |x| accepted by [Exp]. e^44 is already above 2^63.
const MaxExpArgument = 44

// Taylor coefficients of e^r, 1/k! for k = 0..16.
var expCoeffs = [...]int64{
	one,
	one,
	(one + fact2/2) / fact2,
	(one + fact3/2) / fact3,
	(one + fact4/2) / fact4,
	(one + fact5/2) / fact5,
	(one + fact6/2) / fact6,
	(one + fact7/2) / fact7,
	(one + fact8/2) / fact8,
	(one + fact9/2) / fact9,
	(one + fact10/2) / fact10,
	(one + fact11/2) / fact11,
	(one + fact12/2) / fact12,
	(one + fact13/2) / fact13,
	(one + fact14/2) / fact14,
	(one + fact15/2) / fact15,
	(one + fact16/2) / fact16,
}

// Exponential of x. Returns [ErrDomain] when |x| > [MaxExpArgument].
// Results outside the format are resolved by the policy, so under
// Saturate large arguments give the maximum value of the format and
// very negative ones give zero.
func Exp[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	f := fractionBits(x)
	if !withinAbs(x.Raw(), f, MaxExpArgument) {
		return qformat.Q[F, P]{}, errors.Wrapf(ErrDomain, "exp(%s)", x)
	}

	// x = n*ln2 + r with |r| <= ln2/2, so e^x = 2^n * e^r
	n := roundRsh(wide.Mul64(x.Raw(), invLn2_60), uint(f + workBits)).Int64()
	exact := wide.FromInt64(x.Raw()).Lsh(uint(120 - f))
	r := roundRsh(exact.Sub(ln2_120.MulInt64(n)), 120 - workBits).Int64()

	p := horner(expCoeffs[:], r)
	return qformat.FromScaled[F, P](wide.FromInt64(p), workBits - int(n)), nil
}
