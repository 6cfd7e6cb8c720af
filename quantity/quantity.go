package quantity

import "github.com/pkg/errors"

// Returned by [Cast] when the exponent vectors differ.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Magnitude types usable in a [Quantity]. Every qformat.Q satisfies
// it, and so does [Real].
type Magnitude[M any] interface {
	Add(M) M
	Sub(M) M
	Neg() M
	Abs() M
	Mul(M) M
	Div(M) (M, error)
	Sqrt() (M, error)
	Cmp(M) int
	Float64() float64
	String() string
}

// Magnitude with a physical dimension D. Only the magnitude is
// stored, the dimension exists only at compile time.
type Quantity[D Dimension, M Magnitude[M]] struct {
	magnitude M
}

// Creates a quantity. The dimension must be explicit, the magnitude
// type can be inferred:
//   length := quantity.New[quantity.Length](meters)
func New[D Dimension, M Magnitude[M]](magnitude M) Quantity[D, M] {
	return Quantity[D, M]{ magnitude: magnitude }
}

func (self Quantity[D, M]) Magnitude() M { return self.magnitude }

// Returns the exponent vector of the dimension.
func (self Quantity[D, M]) Dimension() Vector { return VectorOf[D]() }

func (self Quantity[D, M]) Add(other Quantity[D, M]) Quantity[D, M] {
	return Quantity[D, M]{ magnitude: self.magnitude.Add(other.magnitude) }
}

func (self Quantity[D, M]) Sub(other Quantity[D, M]) Quantity[D, M] {
	return Quantity[D, M]{ magnitude: self.magnitude.Sub(other.magnitude) }
}

func (self Quantity[D, M]) Neg() Quantity[D, M] {
	return Quantity[D, M]{ magnitude: self.magnitude.Neg() }
}

func (self Quantity[D, M]) Abs() Quantity[D, M] {
	return Quantity[D, M]{ magnitude: self.magnitude.Abs() }
}

// Multiplies the quantity by a dimensionless factor.
func (self Quantity[D, M]) Scale(factor M) Quantity[D, M] {
	return Quantity[D, M]{ magnitude: self.magnitude.Mul(factor) }
}

// Returns -1 if self < other, 0 if they are equal and +1 otherwise.
func (self Quantity[D, M]) Cmp(other Quantity[D, M]) int {
	return self.magnitude.Cmp(other.magnitude)
}

func (self Quantity[D, M]) Equal(other Quantity[D, M]) bool { return self.Cmp(other) == 0 }
func (self Quantity[D, M]) Less(other Quantity[D, M]) bool { return self.Cmp(other) < 0 }

func (self Quantity[D, M]) Float64() float64 { return self.magnitude.Float64() }

// Returns the magnitude followed by the unit symbol, like "9.81 m·s⁻²".
func (self Quantity[D, M]) String() string {
	unit := VectorOf[D]().String()
	if unit == "" { return self.magnitude.String() }
	return self.magnitude.String() + " " + unit
}

// Multiplies two quantities. The exponents of the result are the sums
// of the exponents of the operands.
//
// The result type keeps the operand order, so Mul(a, b) and Mul(b, a)
// have different types even though their dimensions are equal. Use
// [Cast] to bring both to a common dimension before combining them:
//   ab := quantity.MustCast[quantity.Charge](quantity.Mul(current, time))
//   ba := quantity.MustCast[quantity.Charge](quantity.Mul(time, current))
//   total := ab.Add(ba)
// The same applies to [Div] and nested composites.
func Mul[A, B Dimension, M Magnitude[M]](a Quantity[A, M], b Quantity[B, M]) Quantity[Prod[A, B], M] {
	return Quantity[Prod[A, B], M]{ magnitude: a.magnitude.Mul(b.magnitude) }
}

// Divides two quantities. Errors from the magnitude division (division
// by zero) are returned as is.
func Div[A, B Dimension, M Magnitude[M]](a Quantity[A, M], b Quantity[B, M]) (Quantity[Quot[A, B], M], error) {
	quo, err := a.magnitude.Div(b.magnitude)
	if err != nil { return Quantity[Quot[A, B], M]{}, err }
	return Quantity[Quot[A, B], M]{ magnitude: quo }, nil
}

// Returns one/q. The magnitude one must be passed explicitly, as the
// [Magnitude] interface can't create values.
func Invert[A Dimension, M Magnitude[M]](q Quantity[A, M], one M) (Quantity[Inv[A], M], error) {
	quo, err := one.Div(q.magnitude)
	if err != nil { return Quantity[Inv[A], M]{}, err }
	return Quantity[Inv[A], M]{ magnitude: quo }, nil
}

// Square root of a quantity. Exponents are halved, so the square root
// of a length has the dimension m^(1/2).
func Sqrt[A Dimension, M Magnitude[M]](q Quantity[A, M]) (Quantity[Root[A], M], error) {
	root, err := q.magnitude.Sqrt()
	if err != nil { return Quantity[Root[A], M]{}, err }
	return Quantity[Root[A], M]{ magnitude: root }, nil
}

// Relabels a quantity with the dimension R, which must have the same
// exponent vector as D. Returns [ErrDimensionMismatch] otherwise:
//   accel, err := quantity.Cast[quantity.Acceleration](quotient)
func Cast[R, D Dimension, M Magnitude[M]](q Quantity[D, M]) (Quantity[R, M], error) {
	from, to := VectorOf[D](), VectorOf[R]()
	if !from.Equal(to) {
		return Quantity[R, M]{}, errors.Wrapf(ErrDimensionMismatch, "can't cast %q to %q", from.String(), to.String())
	}
	return Quantity[R, M]{ magnitude: q.magnitude }, nil
}

// Like [Cast], but panics on mismatch. Mostly useful in tests and
// package level values.
func MustCast[R, D Dimension, M Magnitude[M]](q Quantity[D, M]) Quantity[R, M] {
	result, err := Cast[R](q)
	if err != nil { panic(err) }
	return result
}
