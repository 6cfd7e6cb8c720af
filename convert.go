package qformat

import "fmt"
import "math"
import "math/big"

import "github.com/pkg/errors"
import "github.com/shopspring/decimal"
import "golang.org/x/exp/constraints"

import "github.com/tinne26/qformat/wide"

// Creates a value from an integer. Integers outside the range of the
// format are resolved by the policy:
//   qformat.FromInt[qformat.Q7_8, qformat.Saturate](1000) // max, 127.99609375
func FromInt[F Format, P Policy, I constraints.Integer](value I) Q[F, P] {
	var x wide.Int
	if value >= 0 {
		x = wide.FromUint64(uint64(value))
	} else {
		x = wide.FromInt64(int64(value))
	}
	return Q[F, P]{ raw: reduce[P](x, -int(specOf[F]().FractionBits), specOf[F]()) }
}

// Converts a floating point value to the closest fixed point value,
// rounding ties away from zero. Values outside the range of the
// format are resolved by the policy. Returns [ErrNonFiniteInput] for
// NaN and infinities.
func FromFloat[F Format, P Policy, T constraints.Float](value T) (Q[F, P], error) {
	spec := specOf[F]()
	float := float64(value)
	if math.IsNaN(float) || math.IsInf(float, 0) {
		return Q[F, P]{}, errors.Wrapf(ErrNonFiniteInput, "converting %v to %s", float, spec)
	}

	scaled := math.Round(math.Ldexp(float, int(spec.FractionBits)))
	x, ok := wide.FromFloat64(scaled)
	if !ok { x = wide.Saturated(scaled < 0) }
	return Q[F, P]{ raw: reduce[P](x, 0, spec) }, nil
}

// Like [FromFloat], but panics on non-finite input. Mostly useful for
// package level values.
func MustFromFloat[F Format, P Policy, T constraints.Float](value T) Q[F, P] {
	q, err := FromFloat[F, P](value)
	if err != nil { panic(err) }
	return q
}

// Converts an exact decimal to the closest fixed point value, rounding
// ties away from zero. Values outside the range of the format are
// resolved by the policy.
func FromDecimal[F Format, P Policy](value decimal.Decimal) Q[F, P] {
	spec := specOf[F]()
	scale := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(spec.FractionBits)), 0)
	scaled := value.Mul(scale).Round(0).BigInt()
	x, ok := wide.FromBig(scaled)
	if !ok {
		raw := resolveOverflow[P](wide.MagnitudeMod(scaled), scaled.Sign() < 0, false, 0, spec)
		return Q[F, P]{ raw: raw }
	}
	return Q[F, P]{ raw: reduce[P](x, 0, spec) }
}

// Parses a decimal string like "-3.1415" and converts it with
// [FromDecimal].
func Parse[F Format, P Policy](str string) (Q[F, P], error) {
	value, err := decimal.NewFromString(str)
	if err != nil { return Q[F, P]{}, errors.Wrapf(err, "parsing %q", str) }
	return FromDecimal[F, P](value), nil
}

// Creates a value from the exact intermediate x / 2^fractionBits,
// letting the policy round and resolve overflows. This is the entry
// point for algorithms that compute in their own precision, like the
// ones in the qmath subpackage. Negative fractionBits scale x up.
func FromScaled[F Format, P Policy](x wide.Int, fractionBits int) Q[F, P] {
	spec := specOf[F]()
	return Q[F, P]{ raw: reduce[P](x, fractionBits - int(spec.FractionBits), spec) }
}

// Converts a value to another format and policy. The target policy
// rounds and resolves overflows:
//   narrow := qformat.Convert[qformat.Q7_8, qformat.Saturate](wide)
// Conversions that don't lose precision nor range are exact, and
// converting back recovers the original value.
func Convert[TF Format, TP Policy, F Format, P Policy](value Q[F, P]) Q[TF, TP] {
	from, to := specOf[F](), specOf[TF]()
	shift := int(from.FractionBits) - int(to.FractionBits)
	return Q[TF, TP]{ raw: reduce[TP](value.widen(), shift, to) }
}

// Description of a conversion between two formats.
type Conversion struct {
	From Spec
	To Spec

	// Left shift applied to the raw value, To.FractionBits -
	// From.FractionBits. Negative values are right shifts.
	Shift int

	// Some values of From are not multiples of the To ulp.
	LosesPrecision bool

	// Some values of From are outside the range of To.
	LosesRange bool
}

// Returns whether every value of From is exactly representable in To.
func (self Conversion) Lossless() bool {
	return !self.LosesPrecision && !self.LosesRange
}

func (self Conversion) String() string {
	loss := "lossless"
	switch {
	case self.LosesPrecision && self.LosesRange: loss = "loses precision and range"
	case self.LosesPrecision: loss = "loses precision"
	case self.LosesRange: loss = "loses range"
	}
	return fmt.Sprintf("%s -> %s: shift %+d, %s", self.From, self.To, self.Shift, loss)
}

// Describes the conversion between two formats. Panics if any of the
// descriptors is invalid.
func PlanConversion(from, to Spec) Conversion {
	from.mustBeValid()
	to.mustBeValid()
	plan := Conversion{ From: from, To: to }
	plan.Shift = int(to.FractionBits) - int(from.FractionBits)
	plan.LosesPrecision = plan.Shift < 0

	// compare the limits aligned to the larger number of fractional bits
	fract := max(from.FractionBits, to.FractionBits)
	aligned := func(raw int64, spec Spec) wide.Int {
		return wide.FromInt64(raw).Lsh(uint(fract - spec.FractionBits))
	}
	plan.LosesRange = aligned(from.MaxRaw(), from).Cmp(aligned(to.MaxRaw(), to)) > 0 ||
		aligned(from.MinRaw(), from).Cmp(aligned(to.MinRaw(), to)) < 0
	return plan
}
