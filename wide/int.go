package wide

import "math"
import "math/big"
import "math/bits"

// Signed two's complement 128-bit integer. The zero value is 0.
type Int struct {
	hi uint64
	lo uint64
}

// Limit used by callers that need to clamp intermediates before
// handing them to an overflow policy: any |value| >= 2^126 is treated
// as saturated.
const LimitBits = 126

// Largest and smallest values representable by an [Int].
var (
	Max = Int{ hi: math.MaxInt64, lo: math.MaxUint64 }
	Min = Int{ hi: 1 << 63, lo: 0 }
)

// Creates an [Int] from an int64, sign extending it.
func FromInt64(value int64) Int {
	return Int{ hi: uint64(value >> 63), lo: uint64(value) }
}

// Creates an [Int] from an uint64.
func FromUint64(value uint64) Int {
	return Int{ lo: value }
}

// Creates an [Int] from its two's complement halves.
func FromParts(hi int64, lo uint64) Int {
	return Int{ hi: uint64(hi), lo: lo }
}

// Returns +2^[LimitBits] or -2^[LimitBits] depending on the sign.
func Saturated(negative bool) Int {
	limit := One().Lsh(LimitBits)
	if negative { return limit.Neg() }
	return limit
}

// Returns 1.
func One() Int { return Int{ lo: 1 } }

// Returns the high half of the two's complement representation.
func (self Int) Hi() int64 { return int64(self.hi) }

// Returns the low half of the two's complement representation.
func (self Int) Lo() uint64 { return self.lo }

func (self Int) Add(other Int) Int {
	lo, carry := bits.Add64(self.lo, other.lo, 0)
	hi, _ := bits.Add64(self.hi, other.hi, carry)
	return Int{ hi: hi, lo: lo }
}

func (self Int) Sub(other Int) Int {
	lo, borrow := bits.Sub64(self.lo, other.lo, 0)
	hi, _ := bits.Sub64(self.hi, other.hi, borrow)
	return Int{ hi: hi, lo: lo }
}

// Negation wraps for [Min], like it does for int64.
func (self Int) Neg() Int {
	return Int{}.Sub(self)
}

// Returns the absolute value. Wraps for [Min].
func (self Int) Abs() Int {
	if self.Sign() < 0 { return self.Neg() }
	return self
}

// Returns -1, 0 or +1.
func (self Int) Sign() int {
	if int64(self.hi) < 0 { return -1 }
	if self.hi == 0 && self.lo == 0 { return 0 }
	return 1
}

func (self Int) IsZero() bool {
	return self.hi == 0 && self.lo == 0
}

// Returns -1 if self < other, 0 if they are equal and +1 otherwise.
func (self Int) Cmp(other Int) int {
	shi, ohi := int64(self.hi), int64(other.hi)
	if shi < ohi { return -1 }
	if shi > ohi { return +1 }
	if self.lo < other.lo { return -1 }
	if self.lo > other.lo { return +1 }
	return 0
}

// Left shift. Bits shifted past the top are lost.
func (self Int) Lsh(n uint) Int {
	switch {
	case n == 0:
		return self
	case n >= 128:
		return Int{}
	case n >= 64:
		return Int{ hi: self.lo << (n - 64), lo: 0 }
	default:
		return Int{ hi: self.hi << n | self.lo >> (64 - n), lo: self.lo << n }
	}
}

// Arithmetic right shift, rounding toward negative infinity.
func (self Int) Rsh(n uint) Int {
	sign := uint64(int64(self.hi) >> 63)
	switch {
	case n == 0:
		return self
	case n >= 128:
		return Int{ hi: sign, lo: sign }
	case n >= 64:
		return Int{ hi: sign, lo: uint64(int64(self.hi) >> (n - 64)) }
	default:
		return Int{
			hi: uint64(int64(self.hi) >> n),
			lo: self.lo >> n | self.hi << (64 - n),
		}
	}
}

// Returns whether any of the n lowest bits is set.
func (self Int) LowBitsSet(n uint) bool {
	switch {
	case n == 0:
		return false
	case n >= 128:
		return !self.IsZero()
	case n > 64:
		return self.lo != 0 || self.hi << (128 - n) != 0
	case n == 64:
		return self.lo != 0
	default:
		return self.lo << (64 - n) != 0
	}
}

// Returns the value with its lowest bit set.
func (self Int) SetLowBit() Int {
	self.lo |= 1
	return self
}

// Returns the number of bits needed to represent the absolute value.
// The result for [Min] is 128.
func (self Int) BitLen() int {
	if self == Min { return 128 }
	abs := self.Abs()
	if abs.hi != 0 { return 64 + bits.Len64(abs.hi) }
	return bits.Len64(abs.lo)
}

// Returns whether the value fits an int64.
func (self Int) IsInt64() bool {
	return self.hi == uint64(int64(self.lo) >> 63)
}

// Returns the low 64 bits reinterpreted as an int64. Only meaningful
// when [Int.IsInt64]() is true.
func (self Int) Int64() int64 {
	return int64(self.lo)
}

// Multiplies two int64 values without loss.
func Mul64(a, b int64) Int {
	hi, lo := bits.Mul64(absUint64(a), absUint64(b))
	product := Int{ hi: hi, lo: lo }
	if (a < 0) != (b < 0) { return product.Neg() }
	return product
}

// Multiplies by an int64. The result is truncated to 128 bits, so
// callers must keep BitLen() + bits.Len64(|factor|) <= 127.
func (self Int) MulInt64(factor int64) Int {
	abs := self.Abs()
	f := absUint64(factor)
	hi, lo := bits.Mul64(abs.lo, f)
	hi += abs.hi * f
	product := Int{ hi: hi, lo: lo }
	if (self.Sign() < 0) != (factor < 0) { return product.Neg() }
	return product
}

// Approximate conversion to float64.
func (self Int) Float64() float64 {
	if self.IsInt64() { return float64(int64(self.lo)) }
	abs := self.Abs()
	value := math.Ldexp(float64(abs.hi), 64) + float64(abs.lo)
	if self.Sign() < 0 { return -value }
	return value
}

// Converts an integer valued float64 to an [Int]. Returns false if
// the value is not finite or its magnitude is >= 2^[LimitBits].
func FromFloat64(value float64) (Int, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) { return Int{}, false }
	abs := math.Abs(value)
	if abs >= math.Ldexp(1, LimitBits) { return Int{}, false }
	var result Int
	if abs < math.Ldexp(1, 63) {
		result = FromUint64(uint64(abs))
	} else {
		// abs has at most 53 significant bits, both halves are exact
		hi := math.Floor(math.Ldexp(abs, -64))
		lo := abs - math.Ldexp(hi, 64)
		result = Int{ hi: uint64(hi), lo: uint64(lo) }
	}
	if value < 0 { return result.Neg(), true }
	return result, true
}

// Converts a [big.Int] to an [Int]. Returns false if the magnitude
// is >= 2^[LimitBits].
func FromBig(value *big.Int) (Int, bool) {
	if value.BitLen() > LimitBits { return Int{}, false }
	abs := new(big.Int).Abs(value)
	lo := new(big.Int).And(abs, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(abs, 64)
	result := Int{ hi: hi.Uint64(), lo: lo.Uint64() }
	if value.Sign() < 0 { return result.Neg(), true }
	return result, true
}

// Returns |value| modulo 2^128. The top bit of the result may be set.
func MagnitudeMod(value *big.Int) Int {
	mask := new(big.Int).SetUint64(math.MaxUint64)
	abs := new(big.Int).Abs(value)
	lo := new(big.Int).And(abs, mask)
	hi := new(big.Int).And(abs.Rsh(abs, 64), mask)
	return Int{ hi: hi.Uint64(), lo: lo.Uint64() }
}

// Converts the value to a [big.Int].
func (self Int) Big() *big.Int {
	abs := self.Abs()
	result := new(big.Int).SetUint64(abs.hi)
	result.Lsh(result, 64)
	result.Or(result, new(big.Int).SetUint64(abs.lo))
	if self == Min { return result.Neg(new(big.Int).Lsh(big.NewInt(1), 127)) }
	if self.Sign() < 0 { result.Neg(result) }
	return result
}

// Returns the decimal representation of the value.
func (self Int) String() string {
	return self.Big().String()
}

func absUint64(value int64) uint64 {
	if value < 0 { return uint64(-value) } // MinInt64 wraps into 1 << 63
	return uint64(value)
}
