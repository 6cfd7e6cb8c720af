package qformat

// Predefined formats. Names follow the Qm_n convention: m integer bits
// (sign excluded) and n fractional bits. The UQ prefix marks unsigned
// formats.

// Signed 16-bit format with 8 fractional bits.
type Q7_8 struct{}
func (Q7_8) Spec() Spec { return Spec{ TotalBits: 16, FractionBits: 8, Signed: true } }

// Signed 16-bit format with 12 fractional bits.
type Q3_12 struct{}
func (Q3_12) Spec() Spec { return Spec{ TotalBits: 16, FractionBits: 12, Signed: true } }

// Signed 16-bit format in [-1, 1), the classic "Q15" of DSP code.
type Q0_15 struct{}
func (Q0_15) Spec() Spec { return Spec{ TotalBits: 16, FractionBits: 15, Signed: true } }

// Signed 32-bit format with 16 fractional bits.
type Q15_16 struct{}
func (Q15_16) Spec() Spec { return Spec{ TotalBits: 32, FractionBits: 16, Signed: true } }

// Signed 31-bit format with 25 fractional bits, handy for angles.
type Q5_25 struct{}
func (Q5_25) Spec() Spec { return Spec{ TotalBits: 31, FractionBits: 25, Signed: true } }

// Signed 32-bit format in [-1, 1), the classic "Q31".
type Q0_31 struct{}
func (Q0_31) Spec() Spec { return Spec{ TotalBits: 32, FractionBits: 31, Signed: true } }

// Signed 64-bit format with 16 fractional bits.
type Q47_16 struct{}
func (Q47_16) Spec() Spec { return Spec{ TotalBits: 64, FractionBits: 16, Signed: true } }

// Signed 64-bit format with 32 fractional bits.
type Q31_32 struct{}
func (Q31_32) Spec() Spec { return Spec{ TotalBits: 64, FractionBits: 32, Signed: true } }

// Signed 64-bit format with 60 fractional bits. This is the working
// precision of the qmath kernel.
type Q3_60 struct{}
func (Q3_60) Spec() Spec { return Spec{ TotalBits: 64, FractionBits: 60, Signed: true } }

// Unsigned 16-bit format with 8 fractional bits.
type UQ8_8 struct{}
func (UQ8_8) Spec() Spec { return Spec{ TotalBits: 16, FractionBits: 8, Signed: false } }

// Unsigned 16-bit format in [0, 2).
type UQ1_15 struct{}
func (UQ1_15) Spec() Spec { return Spec{ TotalBits: 16, FractionBits: 15, Signed: false } }

// Unsigned 32-bit format with 16 fractional bits.
type UQ16_16 struct{}
func (UQ16_16) Spec() Spec { return Spec{ TotalBits: 32, FractionBits: 16, Signed: false } }

// Unsigned 63-bit format with 31 fractional bits (the widest unsigned
// layout a single int64 can store).
type UQ32_31 struct{}
func (UQ32_31) Spec() Spec { return Spec{ TotalBits: 63, FractionBits: 31, Signed: false } }
