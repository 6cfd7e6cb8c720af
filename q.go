package qformat

import "math"

import "github.com/tinne26/qformat/wide"

// Fixed point value. The stored raw integer represents
// raw / 2^FractionBits, with the format F and the overflow policy P
// both fixed at compile time.
//
// Values are immutable and the zero value is 0. Operations between
// different formats are possible through [AddTo], [MulTo], [Convert]
// and friends, but mixing policies always requires an explicit
// [Convert].
type Q[F Format, P Policy] struct {
	raw int64
}

// Creates a value from a raw integer, as is. Raws outside the range
// of the format are resolved by the policy.
func FromRaw[F Format, P Policy](raw int64) Q[F, P] {
	return Q[F, P]{ raw: reduce[P](wide.FromInt64(raw), 0, specOf[F]()) }
}

// Returns the stored raw integer.
func (self Q[F, P]) Raw() int64 { return self.raw }

// Returns the format descriptor of the value.
func (self Q[F, P]) Spec() Spec { return specOf[F]() }

// Returns the value as a float64. The conversion is exact unless the
// raw value has more than 53 significant bits.
func (self Q[F, P]) Float64() float64 {
	return math.Ldexp(float64(self.raw), -int(specOf[F]().FractionBits))
}

// Returns the value as a float32. The conversion is exact unless the
// raw value has more than 24 significant bits.
func (self Q[F, P]) Float32() float32 {
	return float32(self.Float64())
}

// Returns whether the value is the closest one, or one ulp away from
// the closest one, to the given float. Floats outside the range of
// the format are compared against the closest limit.
func (self Q[F, P]) IsNearestTo(value float64) bool {
	if math.IsNaN(value) { return false }
	spec := specOf[F]()
	lowest := math.Ldexp(float64(spec.MinRaw()), -int(spec.FractionBits))
	highest := math.Ldexp(float64(spec.MaxRaw()), -int(spec.FractionBits))
	value = math.Max(lowest, math.Min(highest, value))
	nearest := math.Round(math.Ldexp(value, int(spec.FractionBits)))
	return math.Abs(nearest - float64(self.raw)) <= 1
}

func (self Q[F, P]) IsZero() bool { return self.raw == 0 }

// Returns -1, 0 or +1.
func (self Q[F, P]) Sign() int {
	if self.raw < 0 { return -1 }
	if self.raw > 0 { return +1 }
	return 0
}

// Returns -1 if self < other, 0 if they are equal and +1 otherwise.
func (self Q[F, P]) Cmp(other Q[F, P]) int {
	if self.raw < other.raw { return -1 }
	if self.raw > other.raw { return +1 }
	return 0
}

func (self Q[F, P]) Equal(other Q[F, P]) bool { return self.raw == other.raw }
func (self Q[F, P]) Less(other Q[F, P]) bool { return self.raw < other.raw }

// Returns the smaller of the two values.
func (self Q[F, P]) Min(other Q[F, P]) Q[F, P] {
	if other.raw < self.raw { return other }
	return self
}

// Returns the larger of the two values.
func (self Q[F, P]) Max(other Q[F, P]) Q[F, P] {
	if other.raw > self.raw { return other }
	return self
}

// Applies the policy P of the value to x / 2^shift.
func (self Q[F, P]) with(x wide.Int, shift int) Q[F, P] {
	return Q[F, P]{ raw: reduce[P](x, shift, specOf[F]()) }
}

func (self Q[F, P]) widen() wide.Int { return wide.FromInt64(self.raw) }
