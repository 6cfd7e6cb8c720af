package qformat

import "strconv"

// Maximum storage width. A [Q] always stores a single int64, so signed
// formats can use all 64 bits while unsigned ones are limited to 63.
const MaxTotalBits = 64

// Format descriptor for fixed point values.
//
// A value in a format is interpreted as storedInteger / 2^FractionBits.
// The number of integer bits is derived: TotalBits - FractionBits, minus
// one more bit for the sign in signed formats.
type Spec struct {
	TotalBits    uint8
	FractionBits uint8
	Signed       bool
}

// Interface for fixed point formats. Formats are zero sized types used
// as type parameters of [Q], so the Spec() method must always return
// the same value:
//   type Q9_22 struct{}
//   func (Q9_22) Spec() qformat.Spec { return qformat.Spec{32, 22, true} }
type Format interface {
	Spec() Spec
}

func (self Spec) IntegerBits() int {
	bits := int(self.TotalBits) - int(self.FractionBits)
	if self.Signed { bits -= 1 }
	return bits
}

// Returns whether the descriptor is usable: 0 < TotalBits <= 64 (63
// for unsigned formats) and FractionBits < TotalBits.
func (self Spec) Valid() bool {
	if self.TotalBits == 0 || self.TotalBits > MaxTotalBits { return false }
	if !self.Signed && self.TotalBits == MaxTotalBits { return false }
	return self.FractionBits < self.TotalBits
}

// Largest representable raw value.
func (self Spec) MaxRaw() int64 {
	if self.Signed { return int64(uint64(1) << (self.TotalBits - 1) - 1) }
	return int64(uint64(1) << self.TotalBits - 1)
}

// Smallest representable raw value (zero for unsigned formats).
func (self Spec) MinRaw() int64 {
	if self.Signed { return int64(-1) << (self.TotalBits - 1) }
	return 0
}

// Returns the conventional Q notation of the format, like
// "Q7.8" or "UQ1.15".
func (self Spec) String() string {
	prefix := "Q"
	if !self.Signed { prefix = "UQ" }
	return prefix + strconv.Itoa(self.IntegerBits()) + "." + strconv.Itoa(int(self.FractionBits))
}

func (self Spec) mustBeValid() {
	if self.Valid() { return }
	total, fract := strconv.Itoa(int(self.TotalBits)), strconv.Itoa(int(self.FractionBits))
	panic("invalid fixed point format (total bits " + total + ", fraction bits " + fract + ")")
}

// Returns the validated descriptor of F. Panics if invalid.
func specOf[F Format]() Spec {
	var format F
	spec := format.Spec()
	spec.mustBeValid()
	return spec
}

// SpecOf returns the descriptor of the format F.
func SpecOf[F Format]() Spec { return specOf[F]() }
