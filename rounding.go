package qformat

import "github.com/tinne26/qformat/wide"

// Integer rounding helpers. Methods returning Q can overflow near the
// upper limit of the format (the ceiling of the maximum value might not
// be representable), in which case the policy resolves the result.
// Methods returning int64 are exact.

// Returns whether the value is a whole number or if it
// has a fractional part.
func (self Q[F, P]) IsWhole() bool {
	return !self.widen().LowBitsSet(uint(specOf[F]().FractionBits))
}

func (self Q[F, P]) Floor() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	return self.with(self.widen().Rsh(f).Lsh(f), 0)
}

func (self Q[F, P]) Ceil() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	return self.with(self.widen().Add(fractMask(f)).Rsh(f).Lsh(f), 0)
}

// Rounds toward zero.
func (self Q[F, P]) Trunc() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	return self.with(truncate(self.widen(), f).Lsh(f), 0)
}

// Rounds to the closest whole number, ties away from zero.
func (self Q[F, P]) Round() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	return self.with(roundNearest(self.widen(), f).Lsh(f), 0)
}

// Rounds to the closest whole number, ties toward positive infinity.
func (self Q[F, P]) HalfUp() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	return self.with(self.widen().Add(half(f)).Rsh(f).Lsh(f), 0)
}

// Rounds to the closest whole number, ties toward negative infinity.
func (self Q[F, P]) HalfDown() Q[F, P] {
	if self.IsWhole() { return self }
	f := uint(specOf[F]().FractionBits)
	return self.with(self.widen().Add(half(f)).Sub(wide.One()).Rsh(f).Lsh(f), 0)
}

// Returns the fractional part of the value, with the same sign as the
// value: Fract(-2.75) == -0.75. Always exact.
func (self Q[F, P]) Fract() Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	whole := truncate(self.widen(), f).Lsh(f)
	return self.with(self.widen().Sub(whole), 0)
}

// Defaults to [Q.ToIntHalfUp](). For the fastest possible
// conversion to int, use [Q.ToIntFloor]() instead.
func (self Q[F, P]) ToInt() int64 {
	return self.ToIntHalfUp()
}

// Fastest conversion from Q to int.
func (self Q[F, P]) ToIntFloor() int64 {
	return self.raw >> specOf[F]().FractionBits
}

func (self Q[F, P]) ToIntCeil() int64 {
	f := uint(specOf[F]().FractionBits)
	return self.widen().Add(fractMask(f)).Rsh(f).Int64()
}

func (self Q[F, P]) ToIntHalfUp() int64 {
	f := uint(specOf[F]().FractionBits)
	return self.widen().Add(half(f)).Rsh(f).Int64()
}

func (self Q[F, P]) ToIntHalfDown() int64 {
	if self.IsWhole() { return self.ToIntFloor() }
	f := uint(specOf[F]().FractionBits)
	return self.widen().Add(half(f)).Sub(wide.One()).Rsh(f).Int64()
}

// Rounds toward the given reference integer.
func (self Q[F, P]) ToIntToward(reference int64) int64 {
	floor := self.ToIntFloor()
	if floor >= reference { return floor }
	return self.ToIntCeil()
}

// Rounds away from the given reference integer.
func (self Q[F, P]) ToIntAway(reference int64) int64 {
	ceil := self.ToIntCeil()
	if ceil > reference { return ceil }
	return self.ToIntFloor()
}

// Rounds toward the given reference integer.
func (self Q[F, P]) Toward(reference int64) Q[F, P] {
	if self.cmpInt(reference) >= 0 { return self.Floor() }
	return self.Ceil()
}

// Rounds away from the given reference integer.
func (self Q[F, P]) Away(reference int64) Q[F, P] {
	if self.cmpInt(reference) <= 0 { return self.Floor() }
	return self.Ceil()
}

// Rounds to the closest whole number, with ties going toward
// the given reference integer.
func (self Q[F, P]) HalfToward(reference int64) Q[F, P] {
	if self.cmpInt(reference) >= 0 { return self.HalfDown() }
	return self.HalfUp()
}

// Rounds to the closest whole number, with ties going away from
// the given reference integer.
func (self Q[F, P]) HalfAway(reference int64) Q[F, P] {
	if self.cmpInt(reference) <= 0 { return self.HalfDown() }
	return self.HalfUp()
}

func (self Q[F, P]) ToIntHalfToward(reference int64) int64 {
	if self.cmpInt(reference) >= 0 { return self.ToIntHalfDown() }
	return self.ToIntHalfUp()
}

func (self Q[F, P]) ToIntHalfAway(reference int64) int64 {
	if self.cmpInt(reference) <= 0 { return self.ToIntHalfDown() }
	return self.ToIntHalfUp()
}

// Given a step in raw units between 1 and 2^FractionBits, quantizes
// the fractional part of the value to multiples of that step, rounding
// up in case of ties. Panics if the step is out of range.
func (self Q[F, P]) QuantizeUp(step int64) Q[F, P] {
	return self.quantize(step, true)
}

// Like [Q.QuantizeUp], but rounds down in case of ties.
func (self Q[F, P]) QuantizeDown(step int64) Q[F, P] {
	return self.quantize(step, false)
}

func (self Q[F, P]) quantize(step int64, tiesUp bool) Q[F, P] {
	f := uint(specOf[F]().FractionBits)
	one := wide.One().Lsh(f)
	wstep := wide.FromInt64(step)
	if step < 1 { panic("step < 1") }
	if wstep.Cmp(one) > 0 { panic("step > 2^FractionBits") }

	// quantize based on the fraction relative to floor
	floor := self.widen().Rsh(f).Lsh(f)
	lfract := self.widen().Sub(floor).Int64() // in [0, 2^f)
	mod := lfract % step
	if mod == 0 { return self }
	sum := wide.FromInt64(lfract - mod)
	tie := mod > step >> 1
	if tiesUp { tie = mod >= step - step >> 1 }
	if tie { // tie point
		sum = sum.Add(wstep)
		if sum.Cmp(one) > 0 { sum = one }
	}
	return self.with(floor.Add(sum), 0)
}

// Compares the value with an integer.
func (self Q[F, P]) cmpInt(value int64) int {
	f := uint(specOf[F]().FractionBits)
	return self.widen().Cmp(wide.FromInt64(value).Lsh(f))
}

// 2^f - 1
func fractMask(f uint) wide.Int {
	return wide.One().Lsh(f).Sub(wide.One())
}

// 2^(f - 1), or zero for f == 0.
func half(f uint) wide.Int {
	if f == 0 { return wide.Int{} }
	return wide.One().Lsh(f - 1)
}
