//go:build GENERATE_QMATH_TABLES

package main

import "os"
import "fmt"
import "strings"
import "math/big"

// See qformat/qmath/tables_generate.go for details.

const precision = 256

func main() {
	const filename = "tables.go"
	fmt.Print("Generating '" + filename + "'... ")

	pi := machinPi()
	ln2 := ln2()
	sqrt2 := new(big.Float).SetPrec(precision).Sqrt(number(2))

	var out strings.Builder
	out.WriteString("// Code generated by test/generate/qmath_tables. DO NOT EDIT.\n\n")
	out.WriteString("package qmath\n\n")
	out.WriteString("import \"github.com/tinne26/qformat/wide\"\n\n")
	out.WriteString("// Constants with 60 fractional bits.\nconst (\n")
	fmt.Fprintf(&out, "\ttwoOverPi60 int64 = %s // 2/pi\n", hex(fixed(quo(number(2), pi), 60)))
	fmt.Fprintf(&out, "\tinvLn2_60   int64 = %s // 1/ln(2)\n", hex(fixed(quo(number(1), ln2), 60)))
	fmt.Fprintf(&out, "\tsqrt2_60    int64 = %s // sqrt(2)\n", hex(fixed(sqrt2, 60)))
	fmt.Fprintf(&out, "\tpi60        int64 = %s // pi\n", hex(fixed(pi, 60)))
	fmt.Fprintf(&out, "\thalfPi60    int64 = %s // pi/2\n", hex(fixed(quo(pi, number(2)), 60)))
	out.WriteString(")\n\n")

	hi, lo := split(fixed(quo(pi, number(2)), 112))
	fmt.Fprintf(&out, "// pi/2 with 112 fractional bits.\nvar halfPi112 = wide.FromParts(%s, %s)\n\n", hi, lo)
	hi, lo = split(fixed(ln2, 120))
	fmt.Fprintf(&out, "// ln(2) with 120 fractional bits.\nvar ln2_120 = wide.FromParts(%s, %s)\n\n", hi, lo)

	// atan(2^-i), with atan(1) = pi/4
	angles := make([]*big.Int, 62)
	angles[0] = fixed(quo(pi, number(4)), 60)
	for i := 1; i < len(angles); i++ {
		x := new(big.Float).SetPrec(precision).SetMantExp(number(1), -i)
		angles[i] = fixed(atan(x), 60)
	}
	out.WriteString("// atan(2^-i) with 60 fractional bits.\nvar cordicAngles = [62]int64{\n")
	writeRows(&out, angles)
	out.WriteString("}\n\n")

	gains := make([]*big.Int, 31)
	gain := number(1)
	gains[0] = fixed(gain, 60)
	for n := 1; n < len(gains); n++ {
		term := new(big.Float).SetPrec(precision).SetMantExp(number(1), -2*(n - 1))
		term.Add(term, number(1))
		gain = quo(gain, new(big.Float).SetPrec(precision).Sqrt(term))
		gains[n] = fixed(gain, 60)
	}
	out.WriteString("// Product of 1/sqrt(1 + 2^-2i) for i < n, with 60 fractional bits.\nvar cordicGains = [31]int64{\n")
	writeRows(&out, gains)
	out.WriteString("}\n")

	err := os.WriteFile(filename, []byte(out.String()), 0644)
	if err != nil { panic(err) }
	fmt.Print("OK\n")
}

func number(value int64) *big.Float {
	return new(big.Float).SetPrec(precision).SetInt64(value)
}

func quo(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precision).Quo(a, b)
}

// Rounds x * 2^bits to the nearest integer. Only for positive x.
func fixed(x *big.Float, bits int) *big.Int {
	scaled := new(big.Float).SetPrec(precision).SetMantExp(x, bits)
	scaled.Add(scaled, new(big.Float).SetFloat64(0.5))
	result, _ := scaled.Int(nil)
	return result
}

// Taylor series of atan for |x| <= 1/2.
func atan(x *big.Float) *big.Float {
	x2 := new(big.Float).SetPrec(precision).Mul(x, x)
	power := new(big.Float).SetPrec(precision).Set(x)
	sum := new(big.Float).SetPrec(precision)
	epsilon := new(big.Float).SetMantExp(number(1), -precision)
	for k := int64(0); ; k++ {
		term := quo(power, number(2*k + 1))
		if term.Cmp(epsilon) < 0 { return sum }
		if k % 2 == 0 { sum.Add(sum, term) } else { sum.Sub(sum, term) }
		power.Mul(power, x2)
	}
}

// pi = 16 atan(1/5) - 4 atan(1/239)
func machinPi() *big.Float {
	a := atan(quo(number(1), number(5)))
	b := atan(quo(number(1), number(239)))
	a.Mul(a, number(16))
	b.Mul(b, number(4))
	return a.Sub(a, b)
}

// ln(2) = 2 atanh(1/3)
func ln2() *big.Float {
	x := quo(number(1), number(3))
	x2 := new(big.Float).SetPrec(precision).Mul(x, x)
	power := new(big.Float).SetPrec(precision).Set(x)
	sum := new(big.Float).SetPrec(precision)
	epsilon := new(big.Float).SetMantExp(number(1), -precision)
	for k := int64(0); ; k++ {
		term := quo(power, number(2*k + 1))
		if term.Cmp(epsilon) < 0 { break }
		sum.Add(sum, term)
		power.Mul(power, x2)
	}
	return sum.Mul(sum, number(2))
}

func hex(value *big.Int) string {
	return fmt.Sprintf("0x%016x", value)
}

func split(value *big.Int) (string, string) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	lo := new(big.Int).And(value, mask)
	hi := new(big.Int).Rsh(value, 64)
	return hex(hi), hex(lo)
}

func writeRows(out *strings.Builder, values []*big.Int) {
	for i := 0; i < len(values); i += 4 {
		end := min(i + 4, len(values))
		row := make([]string, 0, 4)
		for _, value := range values[i:end] { row = append(row, hex(value)) }
		out.WriteString("\t" + strings.Join(row, ", ") + ",\n")
	}
}
