package wide

import "math/bits"

// Computes (a * 2^shift) / b, truncated toward zero, for a negative or
// positive shift. The second return value reports whether the division
// was inexact (non-zero remainder), which callers use as a sticky bit
// for rounding. The third one is false if the quotient magnitude does
// not fit in [LimitBits] bits; the returned quotient is then
// [Saturated]() with the sign of the exact result. [DivShiftMod] can
// recover the low bits in that case.
//
// The function panics if b == 0.
func DivShift(a, b int64, shift int) (Int, bool, bool) {
	if b == 0 { panic("wide.DivShift: division by zero") }
	negative := (a < 0) != (b < 0)
	quo, inexact, ok := divMagnitude(absUint64(a), absUint64(b), shift, true)
	if !ok { return Saturated(negative && a != 0), inexact, false }
	if negative { quo = quo.Neg() }
	return quo, inexact, true
}

// Computes the magnitude of (a * 2^shift) / b, truncated toward zero
// and reduced modulo 2^128, so the result is only meaningful as a bit
// pattern (the top bit may be set). The second return value reports
// whether the division was inexact. Unlike [DivShift], there's no size
// limit: this is what wrapping overflow policies need.
//
// The function panics if b == 0.
func DivShiftMod(a, b int64, shift int) (Int, bool) {
	if b == 0 { panic("wide.DivShiftMod: division by zero") }
	quo, inexact, _ := divMagnitude(absUint64(a), absUint64(b), shift, false)
	return quo, inexact
}

// Long division of ua * 2^shift by ub. With limited set, it stops and
// returns false as soon as the quotient would exceed [LimitBits] bits.
// Otherwise the quotient silently wraps modulo 2^128.
func divMagnitude(ua, ub uint64, shift int, limited bool) (Int, bool, bool) {
	if shift < 0 {
		// divide by ub << -shift instead
		down := uint(-shift)
		if down >= 64 {
			// divisor >= 2^64 > ua
			return Int{}, ua != 0, true
		}
		divisor := FromUint64(ub).Lsh(down)
		if divisor.hi != 0 { return Int{}, ua != 0, true }
		q, r := bits.Div64(0, ua, divisor.lo)
		return FromUint64(q), r != 0, true
	}

	q, r := ua / ub, ua % ub
	quo := FromUint64(q)
	for remaining := shift; remaining > 0; {
		step := min(remaining, 64)
		if limited && quo.BitLen() + step > LimitBits {
			return Int{}, r != 0, false
		}

		// next `step` quotient bits: (r << step) / ub, with r < ub
		var hi, lo uint64
		if step == 64 {
			hi, lo = r, 0
		} else {
			hi, lo = r >> (64 - uint(step)), r << uint(step)
		}
		q, r = bits.Div64(hi, lo, ub)
		quo = quo.Lsh(uint(step)).Add(FromUint64(q))
		remaining -= step
	}
	return quo, r != 0, true
}

// Integer square root of a non-negative value, rounded down. The
// second value is the remainder value - root*root. Panics on negative
// input.
func Sqrt(value Int) (Int, Int) {
	if value.Sign() < 0 { panic("wide.Sqrt: negative input") }
	if value.IsZero() { return Int{}, Int{} }

	// classic bit by bit method, one result bit per iteration
	root := Int{}
	rem := value
	bit := One().Lsh(uint((value.BitLen() - 1) &^ 1))
	for !bit.IsZero() {
		trial := root.Add(bit)
		if rem.Cmp(trial) >= 0 {
			rem = rem.Sub(trial)
			root = root.Rsh(1).Add(bit)
		} else {
			root = root.Rsh(1)
		}
		bit = bit.Rsh(2)
	}
	return root, rem
}
