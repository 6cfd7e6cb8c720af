package quantity

import "math"
import "strconv"

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"

// Floating point [Magnitude], for quantities that don't need a fixed
// point representation.
type Real float64

func (self Real) Add(other Real) Real { return self + other }
func (self Real) Sub(other Real) Real { return self - other }
func (self Real) Neg() Real { return -self }
func (self Real) Abs() Real { return Real(math.Abs(float64(self))) }
func (self Real) Mul(other Real) Real { return self * other }

// Division. Returns [qformat.ErrDivisionByZero] if other is zero, like
// fixed point magnitudes do.
func (self Real) Div(other Real) (Real, error) {
	if other == 0 { return 0, errors.Wrapf(qformat.ErrDivisionByZero, "%s / 0", self) }
	return self / other, nil
}

// Square root. Returns [qformat.ErrDomain] for negative values.
func (self Real) Sqrt() (Real, error) {
	if self < 0 { return 0, errors.Wrapf(qformat.ErrDomain, "sqrt(%s)", self) }
	return Real(math.Sqrt(float64(self))), nil
}

func (self Real) Cmp(other Real) int {
	if self < other { return -1 }
	if self > other { return +1 }
	return 0
}

func (self Real) Float64() float64 { return float64(self) }

func (self Real) String() string {
	return strconv.FormatFloat(float64(self), 'g', -1, 64)
}
