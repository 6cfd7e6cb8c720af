package quantity

import "strings"

// Base dimensions of the SI.
type Base uint8
const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseLuminosity
	NumBases int = iota
)

var baseSymbols = [NumBases]string{ "m", "kg", "s", "A", "K", "mol", "cd" }

// Returns the SI unit symbol of the base, like "kg".
func (self Base) Symbol() string { return baseSymbols[self] }

// Exponents of each base dimension. The zero value is dimensionless.
type Vector [NumBases]Exp

// Creates a vector with integer exponents, in [Base] order. Missing
// trailing exponents are zero.
func Ints(exps ...int32) Vector {
	if len(exps) > NumBases { panic("quantity.Ints: too many exponents") }
	var vector Vector
	for i, exp := range exps { vector[i] = Int(exp) }
	return vector
}

func (self Vector) Add(other Vector) Vector {
	for i := range self { self[i] = self[i].Add(other[i]) }
	return self
}

func (self Vector) Sub(other Vector) Vector {
	for i := range self { self[i] = self[i].Sub(other[i]) }
	return self
}

func (self Vector) Neg() Vector {
	for i := range self { self[i] = self[i].Neg() }
	return self
}

// Halves every exponent, as taking the square root does.
func (self Vector) Half() Vector {
	for i := range self { self[i] = self[i].Half() }
	return self
}

func (self Vector) Equal(other Vector) bool {
	for i := range self {
		if !self[i].Equal(other[i]) { return false }
	}
	return true
}

func (self Vector) IsDimensionless() bool {
	return self.Equal(Vector{})
}

// Returns the unit symbol, like "m·s⁻²" or "kg·m²·s⁻²". Positive
// exponents come first. Dimensionless vectors give "".
func (self Vector) String() string {
	var parts []string
	for _, positive := range []bool{ true, false } {
		for _, base := range unitOrder {
			exp := self[base]
			if exp.IsZero() || (exp.num > 0) != positive { continue }
			part := base.Symbol()
			if !exp.Equal(Int(1)) { part += exp.superscript() }
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "·")
}

// Conventional order for unit symbols (kg·m² rather than m²·kg).
var unitOrder = [NumBases]Base{
	BaseMass, BaseLength, BaseTime, BaseCurrent, BaseTemperature, BaseAmount, BaseLuminosity,
}

// Physical dimension, implemented by zero sized types.
type Dimension interface {
	Vector() Vector
}

// Returns the exponent vector of D.
func VectorOf[D Dimension]() Vector {
	var dim D
	return dim.Vector()
}

// Product of two dimensions. Prod[A, B] and Prod[B, A] describe the
// same vector but are distinct types; see [Cast].
type Prod[A, B Dimension] struct{}
func (Prod[A, B]) Vector() Vector { return VectorOf[A]().Add(VectorOf[B]()) }

// Quotient of two dimensions.
type Quot[A, B Dimension] struct{}
func (Quot[A, B]) Vector() Vector { return VectorOf[A]().Sub(VectorOf[B]()) }

// Inverse of a dimension.
type Inv[A Dimension] struct{}
func (Inv[A]) Vector() Vector { return VectorOf[A]().Neg() }

// Square root of a dimension.
type Root[A Dimension] struct{}
func (Root[A]) Vector() Vector { return VectorOf[A]().Half() }

type Dimensionless struct{}
func (Dimensionless) Vector() Vector { return Vector{} }

type Length struct{}
func (Length) Vector() Vector { return Ints(1) }

type Mass struct{}
func (Mass) Vector() Vector { return Ints(0, 1) }

type Time struct{}
func (Time) Vector() Vector { return Ints(0, 0, 1) }

type Current struct{}
func (Current) Vector() Vector { return Ints(0, 0, 0, 1) }

type Temperature struct{}
func (Temperature) Vector() Vector { return Ints(0, 0, 0, 0, 1) }

type Amount struct{}
func (Amount) Vector() Vector { return Ints(0, 0, 0, 0, 0, 1) }

type Luminosity struct{}
func (Luminosity) Vector() Vector { return Ints(0, 0, 0, 0, 0, 0, 1) }

// Derived dimensions. Use [Cast] to obtain them from composites.
type (
	Area struct{}         // m²
	Volume struct{}       // m³
	Velocity struct{}     // m·s⁻¹
	Acceleration struct{} // m·s⁻²
	Frequency struct{}    // s⁻¹
	Force struct{}        // kg·m·s⁻²
	Energy struct{}       // kg·m²·s⁻²
	Power struct{}        // kg·m²·s⁻³
	Charge struct{}       // s·A
	Voltage struct{}      // kg·m²·s⁻³·A⁻¹
)

func (Area) Vector() Vector { return Ints(2) }
func (Volume) Vector() Vector { return Ints(3) }
func (Velocity) Vector() Vector { return Ints(1, 0, -1) }
func (Acceleration) Vector() Vector { return Ints(1, 0, -2) }
func (Frequency) Vector() Vector { return Ints(0, 0, -1) }
func (Force) Vector() Vector { return Ints(1, 1, -2) }
func (Energy) Vector() Vector { return Ints(2, 1, -2) }
func (Power) Vector() Vector { return Ints(2, 1, -3) }
func (Charge) Vector() Vector { return Ints(0, 0, 1, 1) }
func (Voltage) Vector() Vector { return Ints(2, 1, -3, -1) }
