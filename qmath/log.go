package qmath

import "math/bits"

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/wide"

// Coefficients of 2*atanh(s)/s in z = s^2, 2/(2k+1) for k = 0..12.
var logCoeffs = [...]int64{
	2*one,
	(2*one + 3/2) / 3,
	(2*one + 5/2) / 5,
	(2*one + 7/2) / 7,
	(2*one + 9/2) / 9,
	(2*one + 11/2) / 11,
	(2*one + 13/2) / 13,
	(2*one + 15/2) / 15,
	(2*one + 17/2) / 17,
	(2*one + 19/2) / 19,
	(2*one + 21/2) / 21,
	(2*one + 23/2) / 23,
	(2*one + 25/2) / 25,
}

// Natural logarithm of x. Returns [ErrDomain] when x <= 0.
func Log[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	raw := x.Raw()
	if raw <= 0 { return qformat.Q[F, P]{}, errors.Wrapf(ErrDomain, "log(%s)", x) }

	// x = 2^k * m with m in [1, 2), m with 60 fractional bits
	top := bits.Len64(uint64(raw)) - 1
	k := top - fractionBits(x)
	var m int64
	if top <= workBits {
		m = raw << uint(workBits - top)
	} else {
		m = roundRsh(wide.FromInt64(raw), uint(top - workBits)).Int64()
	}

	// log(m) = 2*atanh(s) with s = (m - 1)/(m + 1). For m >= sqrt(2)
	// use log(m/2) + ln2 instead, so |s| stays below 0.1716
	base := one
	if m >= sqrt2_60 {
		base = 2*one
		k += 1
	}
	quo, _, _ := wide.DivShift(m - base, m + base, workBits)
	s := quo.Int64()
	t := mul60(s, horner(logCoeffs[:], mul60(s, s)))

	// k*ln2 + t with 120 fractional bits
	sum := ln2_120.MulInt64(int64(k)).Add(wide.FromInt64(t).Lsh(120 - workBits))
	return qformat.FromScaled[F, P](sum, 120), nil
}
