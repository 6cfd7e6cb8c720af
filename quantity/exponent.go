package quantity

import "strconv"

// Rational exponent of a base dimension. The zero value is 0.
type Exp struct {
	num int32
	den int32 // zero is treated as one
}

// Returns the exponent n/d in lowest terms. The function panics if d
// is zero.
func Ratio(n, d int32) Exp {
	if d == 0 { panic("quantity.Ratio: zero denominator") }
	if d < 0 { n, d = -n, -d }
	g := gcd(abs32(n), d)
	return Exp{ num: n/g, den: d/g }
}

// Returns the integer exponent n.
func Int(n int32) Exp { return Exp{ num: n, den: 1 } }

func (self Exp) Num() int32 { return self.num }
func (self Exp) Den() int32 {
	if self.den == 0 { return 1 }
	return self.den
}

func (self Exp) IsZero() bool { return self.num == 0 }
func (self Exp) IsInt() bool { return self.Den() == 1 }

func (self Exp) Add(other Exp) Exp {
	return Ratio(self.num*other.Den() + other.num*self.Den(), self.Den()*other.Den())
}

func (self Exp) Sub(other Exp) Exp { return self.Add(other.Neg()) }
func (self Exp) Neg() Exp { return Exp{ num: -self.num, den: self.Den() } }

// Returns self/2.
func (self Exp) Half() Exp { return Ratio(self.num, 2*self.Den()) }

func (self Exp) Equal(other Exp) bool {
	return self.num == other.num && (self.num == 0 || self.Den() == other.Den())
}

// Returns "2", "-1" or "1/2".
func (self Exp) String() string {
	if self.IsInt() { return strconv.Itoa(int(self.num)) }
	return strconv.Itoa(int(self.num)) + "/" + strconv.Itoa(int(self.Den()))
}

// Returns the exponent as Unicode superscripts, like "⁻²". Fractional
// exponents use "^(1/2)" instead.
func (self Exp) superscript() string {
	if !self.IsInt() { return "^(" + self.String() + ")" }
	digits := []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")
	var out []rune
	for _, char := range self.String() {
		if char == '-' {
			out = append(out, '⁻')
		} else {
			out = append(out, digits[char - '0'])
		}
	}
	return string(out)
}

func gcd(a, b int32) int32 {
	for b != 0 { a, b = b, a % b }
	if a == 0 { return 1 }
	return a
}

func abs32(value int32) int32 {
	if value < 0 { return -value }
	return value
}
