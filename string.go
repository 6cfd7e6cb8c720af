package qformat

import "fmt"
import "math/big"

import "github.com/shopspring/decimal"

// Returns the exact value as a decimal. Every fixed point value has a
// finite decimal expansion: raw / 2^f == raw * 5^f / 10^f.
func (self Q[F, P]) Decimal() decimal.Decimal {
	f := int64(specOf[F]().FractionBits)
	coeff := new(big.Int).Exp(big.NewInt(5), big.NewInt(f), nil)
	coeff.Mul(coeff, big.NewInt(self.raw))
	return decimal.NewFromBigInt(coeff, -int32(f))
}

// Returns the exact decimal expansion of the value, without trailing
// zeros ("1.5", "-0.00390625").
func (self Q[F, P]) String() string {
	return self.Decimal().String()
}

// Implements [fmt.Formatter]. %v and %s print the exact decimal
// expansion, %d and %x the raw integer and the float verbs the
// float64 approximation. Flags, width and precision are honored.
func (self Q[F, P]) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(state, fmt.FormatString(state, 's'), self.String())
	case 'd', 'x', 'X', 'b', 'o':
		fmt.Fprintf(state, fmt.FormatString(state, verb), self.raw)
	case 'f', 'F', 'e', 'E', 'g', 'G':
		fmt.Fprintf(state, fmt.FormatString(state, verb), self.Float64())
	default:
		fmt.Fprintf(state, "%%!%c(%s=%s)", verb, specOf[F](), self.String())
	}
}
