package qformat

import "github.com/pkg/errors"

import "github.com/tinne26/qformat/wide"

// Extra quotient bits computed below the result's last bit by all
// divisions. Together with a sticky bit for the remainder, two guard
// bits are enough for every policy to round exactly.
const divGuardBits = 2

func (self Q[F, P]) Add(other Q[F, P]) Q[F, P] {
	return self.with(self.widen().Add(other.widen()), 0)
}

func (self Q[F, P]) Sub(other Q[F, P]) Q[F, P] {
	return self.with(self.widen().Sub(other.widen()), 0)
}

// Negation. The negation of the minimum of a signed format, or of any
// non-zero unsigned value, is resolved by the policy.
func (self Q[F, P]) Neg() Q[F, P] {
	return self.with(self.widen().Neg(), 0)
}

func (self Q[F, P]) Abs() Q[F, P] {
	if self.raw >= 0 { return self }
	return self.Neg()
}

func (self Q[F, P]) Mul(other Q[F, P]) Q[F, P] {
	product := wide.Mul64(self.raw, other.raw)
	return self.with(product, int(specOf[F]().FractionBits))
}

// Division. Returns [ErrDivisionByZero] if other is zero.
func (self Q[F, P]) Div(other Q[F, P]) (Q[F, P], error) {
	if other.raw == 0 {
		return Q[F, P]{}, errors.Wrapf(ErrDivisionByZero, "%s / 0", self.String())
	}
	spec := specOf[F]()
	return Q[F, P]{ raw: divide[P](self.raw, other.raw, int(spec.FractionBits), spec) }, nil
}

// Returns the square root of the value, rounded as the policy
// dictates. Returns [ErrDomain] for negative values.
func (self Q[F, P]) Sqrt() (Q[F, P], error) {
	if self.raw < 0 {
		return Q[F, P]{}, errors.Wrapf(ErrDomain, "sqrt(%s)", self.String())
	}
	spec := specOf[F]()
	root, rem := wide.Sqrt(self.widen().Lsh(uint(spec.FractionBits)))

	// one extra bit: set when the exact root is above root + 1/2
	doubled := root.Lsh(1)
	if rem.Cmp(root) > 0 { doubled = doubled.SetLowBit() }
	return self.with(doubled, 1), nil
}

// Adds two values of arbitrary formats into the format R.
// The policy can be inferred from the operands:
//   sum := qformat.AddTo[qformat.Q15_16](a, b)
func AddTo[R, A, B Format, P Policy](a Q[A, P], b Q[B, P]) Q[R, P] {
	x, y, fract := align(a, b)
	return into[R, P](x.Add(y), fract)
}

// Subtracts b from a into the format R. See [AddTo].
func SubTo[R, A, B Format, P Policy](a Q[A, P], b Q[B, P]) Q[R, P] {
	x, y, fract := align(a, b)
	return into[R, P](x.Sub(y), fract)
}

// Multiplies two values of arbitrary formats into the format R.
// The exact product is computed before the policy rounds it, so
// MulTo never loses more than the final rounding step.
func MulTo[R, A, B Format, P Policy](a Q[A, P], b Q[B, P]) Q[R, P] {
	fract := int(specOf[A]().FractionBits) + int(specOf[B]().FractionBits)
	return into[R, P](wide.Mul64(a.raw, b.raw), fract)
}

// Divides a by b into the format R. Returns [ErrDivisionByZero] if b
// is zero.
func DivTo[R, A, B Format, P Policy](a Q[A, P], b Q[B, P]) (Q[R, P], error) {
	if b.raw == 0 {
		return Q[R, P]{}, errors.Wrapf(ErrDivisionByZero, "%s / 0", a.String())
	}

	// (a / 2^fa) / (b / 2^fb) * 2^fr = (a * 2^(fr + fb - fa)) / b
	spec := specOf[R]()
	shift := int(spec.FractionBits) + int(specOf[B]().FractionBits) - int(specOf[A]().FractionBits)
	return Q[R, P]{ raw: divide[P](a.raw, b.raw, shift, spec) }, nil
}

// Compares values of different formats exactly. Returns -1 if a < b,
// 0 if they are equal and +1 otherwise.
func Compare[A, B Format, P Policy](a Q[A, P], b Q[B, P]) int {
	x, y, _ := align(a, b)
	return x.Cmp(y)
}

// Brings both raws to the larger number of fractional bits. Returns the
// aligned values and their common number of fractional bits.
func align[A, B Format, P Policy](a Q[A, P], b Q[B, P]) (wide.Int, wide.Int, int) {
	fa, fb := specOf[A]().FractionBits, specOf[B]().FractionBits
	x, y := a.widen(), b.widen()
	if fa > fb { return x, y.Lsh(uint(fa - fb)), int(fa) }
	return x.Lsh(uint(fb - fa)), y, int(fb)
}

// Reduces an intermediate with the given fractional bits to R.
func into[R Format, P Policy](x wide.Int, fract int) Q[R, P] {
	spec := specOf[R]()
	return Q[R, P]{ raw: reduce[P](x, fract - int(spec.FractionBits), spec) }
}

// Computes (a * 2^shift) / b with the policy P. b must not be zero.
func divide[P Policy](a, b int64, shift int, spec Spec) int64 {
	quo, inexact, ok := wide.DivShift(a, b, shift + divGuardBits)
	if !ok {
		magnitude, sticky := wide.DivShiftMod(a, b, shift + divGuardBits)
		negative := a != 0 && (a < 0) != (b < 0)
		return resolveOverflow[P](magnitude, negative, sticky, divGuardBits, spec)
	}
	if inexact {
		// sticky bit on the magnitude. the sign must come from the
		// operands, as the truncated quotient may be zero
		if (a < 0) != (b < 0) {
			quo = quo.Neg().SetLowBit().Neg()
		} else {
			quo = quo.SetLowBit()
		}
	}
	return reduce[P](quo, divGuardBits, spec)
}
