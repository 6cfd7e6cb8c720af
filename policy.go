package qformat

import "github.com/tinne26/qformat/wide"

// Policies decide how an exact intermediate result is brought back
// into a format: how the discarded low bits are rounded and what
// happens when the rounded value doesn't fit. Policies are zero sized
// types used as type parameters of [Q] and they never fail.
//
// Apply receives the exact intermediate x, scaled by 2^shift with
// respect to the target format (the result must be x / 2^shift), and
// returns the raw value to store.
//
// Custom policies are allowed, but they must return values within
// [spec.MinRaw(), spec.MaxRaw()].
type Policy interface {
	Apply(x wide.Int, shift uint, spec Spec) int64
}

// Rounds toward negative infinity and clamps out of range results to
// the closest representable value.
type Saturate struct{}

// Rounds toward negative infinity and wraps out of range results
// modulo 2^TotalBits, like native integers do.
type Wrap struct{}

// Rounds to nearest (ties away from zero) and clamps out of range
// results to the closest representable value.
type RoundNearestSaturate struct{}

// Rounds toward zero and wraps out of range results modulo
// 2^TotalBits.
type TruncateWrap struct{}

func (Saturate) Apply(x wide.Int, shift uint, spec Spec) int64 {
	return SaturateRaw(x.Rsh(shift), spec)
}

func (Wrap) Apply(x wide.Int, shift uint, spec Spec) int64 {
	return WrapRaw(x.Rsh(shift), spec)
}

func (RoundNearestSaturate) Apply(x wide.Int, shift uint, spec Spec) int64 {
	return SaturateRaw(roundNearest(x, shift), spec)
}

func (TruncateWrap) Apply(x wide.Int, shift uint, spec Spec) int64 {
	return WrapRaw(truncate(x, shift), spec)
}

// Implemented by the policies that reduce modulo 2^TotalBits. They
// only need the low bits of the exact intermediate, so they can also
// resolve intermediates whose magnitude doesn't fit a [wide.Int].
// The magnitude is |x| modulo 2^128, negative gives the sign, and
// sticky reports that the exact |x| is a bit larger than the magnitude
// (a non-zero remainder was discarded). shift must be below 64.
type wrapping interface {
	wrapMagnitude(magnitude wide.Int, negative, sticky bool, shift uint, spec Spec) int64
}

func (Wrap) wrapMagnitude(magnitude wide.Int, negative, sticky bool, shift uint, spec Spec) int64 {
	quo := magnitude.Rsh(shift)
	if !negative { return WrapRaw(quo, spec) }

	// floor(-m) == -ceil(m)
	if sticky || magnitude.LowBitsSet(shift) { quo = quo.Add(wide.One()) }
	return WrapRaw(quo.Neg(), spec)
}

func (TruncateWrap) wrapMagnitude(magnitude wide.Int, negative, sticky bool, shift uint, spec Spec) int64 {
	quo := magnitude.Rsh(shift)
	if negative { quo = quo.Neg() }
	return WrapRaw(quo, spec)
}

// Applies the policy P to an intermediate whose magnitude exceeds
// 2^[wide.LimitBits]. Wrapping policies get the exact low bits, and
// the rest see the intermediate clamped to ±2^[wide.LimitBits].
func resolveOverflow[P Policy](magnitude wide.Int, negative, sticky bool, shift uint, spec Spec) int64 {
	var policy P
	if wrapper, ok := any(policy).(wrapping); ok {
		return wrapper.wrapMagnitude(magnitude, negative, sticky, shift, spec)
	}
	return policy.Apply(wide.Saturated(negative), shift, spec)
}

// Clamps an integer to the raw range of the given format.
func SaturateRaw(x wide.Int, spec Spec) int64 {
	if max := wide.FromInt64(spec.MaxRaw()); x.Cmp(max) > 0 { return spec.MaxRaw() }
	if min := wide.FromInt64(spec.MinRaw()); x.Cmp(min) < 0 { return spec.MinRaw() }
	return x.Int64()
}

// Reduces an integer modulo 2^TotalBits and reinterprets it in the
// raw range of the given format.
func WrapRaw(x wide.Int, spec Spec) int64 {
	bits := x.Lo()
	if spec.TotalBits >= 64 { return int64(bits) }
	bits &= uint64(1) << spec.TotalBits - 1
	if spec.Signed && bits >= uint64(1) << (spec.TotalBits - 1) {
		return int64(bits) - int64(1) << spec.TotalBits
	}
	return int64(bits)
}

// x / 2^shift rounded toward zero.
func truncate(x wide.Int, shift uint) wide.Int {
	if x.Sign() < 0 { return x.Neg().Rsh(shift).Neg() }
	return x.Rsh(shift)
}

// x / 2^shift rounded to nearest, ties away from zero.
func roundNearest(x wide.Int, shift uint) wide.Int {
	if shift == 0 { return x }
	half := wide.One().Lsh(shift - 1)
	if x.Sign() < 0 { return x.Neg().Add(half).Rsh(shift).Neg() }
	return x.Add(half).Rsh(shift)
}

// Applies the policy P to x / 2^shift. Negative shifts scale x up
// first. If the scaled magnitude would exceed 2^[wide.LimitBits],
// wrapping policies still reduce the exact value, while any other
// policy sees it clamped there.
func reduce[P Policy](x wide.Int, shift int, spec Spec) int64 {
	if shift < 0 {
		up := uint(-shift)
		if x.BitLen() + int(up) > wide.LimitBits {
			return resolveOverflow[P](x.Abs().Lsh(up), x.Sign() < 0, false, 0, spec)
		}
		x = x.Lsh(up)
		shift = 0
	}

	var policy P
	return policy.Apply(x, uint(shift), spec)
}
