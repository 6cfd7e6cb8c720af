package qformat

import "testing"
import "math"
import "math/big"
import "math/rand"

import "github.com/shopspring/decimal"

import "github.com/tinne26/qformat/wide"

func TestPolicyGrid(t *testing.T) {
	spec := Q7_8{}.Spec()
	tests := []struct {
		x int64 // intermediate with two extra fractional bits
		saturate, wrap, nearest, truncWrap int64
	}{
		{0, 0, 0, 0, 0},
		{5, 1, 1, 1, 1}, {6, 1, 1, 2, 1}, {7, 1, 1, 2, 1}, {8, 2, 2, 2, 2},
		{-5, -2, -2, -1, -1}, {-6, -2, -2, -2, -1}, {-7, -2, -2, -2, -1}, {-8, -2, -2, -2, -2},
		{-1, -1, -1, 0, 0}, {-2, -1, -1, -1, 0}, {1, 0, 0, 0, 0}, {2, 0, 0, 1, 0},
		{32767*4 + 3, 32767, 32767, 32767, 32767},
		{32768*4, 32767, -32768, 32767, -32768},
		{-32768*4, -32768, -32768, -32768, -32768},
		{-32769*4, -32768, 32767, -32768, 32767},
		{-32768*4 - 1, -32768, 32767, -32768, -32768},
	}

	for i, test := range tests {
		x := wide.FromInt64(test.x)
		outs := []int64{
			Saturate{}.Apply(x, 2, spec), Wrap{}.Apply(x, 2, spec),
			RoundNearestSaturate{}.Apply(x, 2, spec), TruncateWrap{}.Apply(x, 2, spec),
		}
		expected := []int64{ test.saturate, test.wrap, test.nearest, test.truncWrap }
		for j := range outs {
			if outs[j] != expected[j] {
				str := "test #%d: x = %d / 4, policy #%d expected %d, but got %d"
				t.Fatalf(str, i, test.x, j, expected[j], outs[j])
			}
		}
	}
}

func TestPolicyLaws(t *testing.T) {
	specs := []Spec{
		Q7_8{}.Spec(), Q0_15{}.Spec(), Q15_16{}.Spec(), Q5_25{}.Spec(), Q47_16{}.Spec(),
		Q3_60{}.Spec(), UQ8_8{}.Spec(), UQ1_15{}.Spec(), UQ32_31{}.Spec(),
		{ TotalBits: 1, FractionBits: 0, Signed: true },
		{ TotalBits: 1, FractionBits: 0, Signed: false },
	}

	rng := rand.New(rand.NewSource(11))
	for _, spec := range specs {
		lowest, highest := big.NewInt(spec.MinRaw()), big.NewInt(spec.MaxRaw())
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(spec.TotalBits))
		for i := 0; i < 500; i++ {
			a, b := rng.Int63() >> uint(rng.Intn(63)), rng.Int63() >> uint(rng.Intn(63))
			if rng.Intn(2) == 0 { a = -a }
			x := wide.Mul64(a, b)
			exact := x.Big()

			// saturate equals the clamped value
			sat := SaturateRaw(x, spec)
			want := new(big.Int).Set(exact)
			if want.Cmp(lowest) < 0 { want.Set(lowest) }
			if want.Cmp(highest) > 0 { want.Set(highest) }
			if big.NewInt(sat).Cmp(want) != 0 {
				t.Fatalf("%s: SaturateRaw(%s) expected %s, got %d", spec, exact, want, sat)
			}

			// wrap is congruent modulo 2^TotalBits and in range
			wrapped := WrapRaw(x, spec)
			if wrapped < spec.MinRaw() || wrapped > spec.MaxRaw() {
				t.Fatalf("%s: WrapRaw(%s) = %d out of range", spec, exact, wrapped)
			}
			diff := new(big.Int).Sub(exact, big.NewInt(wrapped))
			if diff.Mod(diff, modulus).Sign() != 0 {
				t.Fatalf("%s: WrapRaw(%s) = %d is not congruent", spec, exact, wrapped)
			}

			// every policy lands in range, whatever the shift
			shift := uint(rng.Intn(100))
			policies := []Policy{ Saturate{}, Wrap{}, RoundNearestSaturate{}, TruncateWrap{} }
			for _, policy := range policies {
				raw := policy.Apply(x, shift, spec)
				if raw < spec.MinRaw() || raw > spec.MaxRaw() {
					t.Fatalf("%s: %T.Apply(%s, %d) = %d out of range", spec, policy, exact, shift, raw)
				}
			}
		}
	}
}

func TestReduceClampsScaledIntermediates(t *testing.T) {
	spec := Q15_16{}.Spec()
	huge := wide.FromInt64(1 << 62)
	if got := reduce[Saturate](huge, -100, spec); got != spec.MaxRaw() {
		t.Fatalf("expected saturation to max, got %d", got)
	}
	if got := reduce[Saturate](huge.Neg(), -100, spec); got != spec.MinRaw() {
		t.Fatalf("expected saturation to min, got %d", got)
	}
	if got := reduce[Wrap](wide.FromInt64(3), -4, spec); got != 48 {
		t.Fatalf("expected 3 << 4 == 48, got %d", got)
	}
}

// Formats at the edges of the storage word.
type q63_0 struct{}
func (q63_0) Spec() Spec { return Spec{ TotalBits: 64, FractionBits: 0, Signed: true } }
type q0_63 struct{}
func (q0_63) Spec() Spec { return Spec{ TotalBits: 64, FractionBits: 63, Signed: true } }

// num / den rounded toward negative infinity.
func floorQuo(num, den *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && (rem.Sign() < 0) != (den.Sign() < 0) {
		quo.Sub(quo, big.NewInt(1))
	}
	return quo
}

func congruent(raw int64, exact *big.Int, totalBits uint8) bool {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(totalBits))
	diff := new(big.Int).Sub(exact, big.NewInt(raw))
	return diff.Mod(diff, modulus).Sign() == 0
}

func TestWrapOverflowingIntermediates(t *testing.T) {
	// dividing a Q63.0 by a Q0.63 into Q0.63 scales the numerator by
	// 2^126, so most quotients exceed the wide range
	tests := []struct{ a, b int64 }{
		{1, 3}, {-1, 3}, {7, -3}, {math.MaxInt64, 1}, {math.MinInt64, 3}, {-5, -7},
	}
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 300; i++ {
		a, b := rng.Int63() >> uint(rng.Intn(63)), rng.Int63() >> uint(rng.Intn(63)) + 1
		if rng.Intn(2) == 0 { a = -a }
		if rng.Intn(2) == 0 { b = -b }
		tests = append(tests, struct{ a, b int64 }{ a, b })
	}

	for i, test := range tests {
		num := new(big.Int).Lsh(big.NewInt(test.a), 126)
		den := big.NewInt(test.b)
		floor, trunc := floorQuo(num, den), new(big.Int).Quo(num, den)

		wrapped, err := DivTo[q0_63](FromInt[q63_0, Wrap](test.a), FromRaw[q0_63, Wrap](test.b))
		if err != nil { t.Fatal(err) }
		if !congruent(wrapped.Raw(), floor, 64) {
			str := "test #%d: %d / (%d >> 63) with Wrap got raw %d, not congruent to %s"
			t.Fatalf(str, i, test.a, test.b, wrapped.Raw(), floor)
		}
		truncated, err := DivTo[q0_63](FromInt[q63_0, TruncateWrap](test.a), FromRaw[q0_63, TruncateWrap](test.b))
		if err != nil { t.Fatal(err) }
		if !congruent(truncated.Raw(), trunc, 64) {
			str := "test #%d: %d / (%d >> 63) with TruncateWrap got raw %d, not congruent to %s"
			t.Fatalf(str, i, test.a, test.b, truncated.Raw(), trunc)
		}

		saturated, _ := DivTo[q0_63](FromInt[q63_0, Saturate](test.a), FromRaw[q0_63, Saturate](test.b))
		want := floor
		if want.Cmp(big.NewInt(math.MaxInt64)) > 0 { want = big.NewInt(math.MaxInt64) }
		if want.Cmp(big.NewInt(math.MinInt64)) < 0 { want = big.NewInt(math.MinInt64) }
		if saturated.Raw() != want.Int64() {
			t.Fatalf("test #%d: %d / (%d >> 63) with Saturate expected %s, got %d", i, test.a, test.b, want, saturated.Raw())
		}
	}

	// scaling up past the wide range
	spec := Q15_16{}.Spec()
	x := wide.FromParts(1 << 40, 7)
	exact := new(big.Int).Lsh(x.Big(), 30)
	if got := reduce[Wrap](x, -30, spec); !congruent(got, exact, spec.TotalBits) {
		t.Fatalf("expected %d to be congruent to %s", got, exact)
	}
	if got := reduce[TruncateWrap](x.Neg(), -30, spec); !congruent(got, exact.Neg(exact), spec.TotalBits) {
		t.Fatalf("expected %d to be congruent to %s", got, exact)
	}

	// floats past the wide range are multiples of 2^74
	if got := MustFromFloat[Q31_32, Wrap](math.Ldexp(1.5, 100)); !got.IsZero() {
		t.Fatalf("expected 1.5 * 2^100 to wrap into zero, got %s", got)
	}

	// decimals past the wide range
	huge := decimal.RequireFromString("-123456789012345678901234567890123456789012345.5")
	scaled := huge.Mul(decimal.NewFromInt(256)).Round(0).BigInt()
	if got := FromDecimal[Q7_8, Wrap](huge); !congruent(got.Raw(), scaled, 16) {
		t.Fatalf("expected %s to be congruent to %s", got, scaled)
	}
	if got := FromDecimal[Q7_8, Saturate](huge); got != MinOf[Q7_8, Saturate]() {
		t.Fatalf("expected saturation, got %s", got)
	}
}
