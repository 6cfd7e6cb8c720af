package qformat

import "testing"
import "fmt"
import "math/rand"

import "github.com/google/go-cmp/cmp"

func TestConvert(t *testing.T) {
	a := MustFromFloat[Q15_16, Saturate](1.2345)

	narrow := Convert[Q7_8, Saturate](a)
	if narrow.Raw() != a.Raw() >> 8 {
		t.Fatalf("expected floor conversion, got %d", narrow.Raw())
	}
	nearest := Convert[Q7_8, RoundNearestSaturate](a)
	if !nearest.IsNearestTo(1.2345) {
		t.Fatalf("expected %s to be nearest to 1.2345", nearest)
	}

	big := FromInt[Q15_16, Saturate](1000)
	if got := Convert[Q7_8, Saturate](big); got != MaxOf[Q7_8, Saturate]() {
		t.Fatalf("expected saturation, got %s", got)
	}
	if got := Convert[Q7_8, Wrap](big); got.Float64() != -24 {
		t.Fatalf("expected wrapping into -24, got %s", got)
	}
	if got := Convert[UQ8_8, Saturate](FromInt[Q7_8, Saturate](-3)); !got.IsZero() {
		t.Fatalf("expected negative to unsigned to saturate at zero, got %s", got)
	}

	// policy only change
	if got := Convert[Q15_16, Wrap](a); got.Raw() != a.Raw() {
		t.Fatal("expected policy change to keep the raw value")
	}
}

func TestPlanConversion(t *testing.T) {
	tests := []struct {
		from, to Spec
		want Conversion
	}{
		{Q7_8{}.Spec(), Q15_16{}.Spec(), Conversion{ Shift: 8 }},
		{Q15_16{}.Spec(), Q7_8{}.Spec(), Conversion{ Shift: -8, LosesPrecision: true, LosesRange: true }},
		{UQ8_8{}.Spec(), Q7_8{}.Spec(), Conversion{ Shift: 0, LosesRange: true }},
		{Q7_8{}.Spec(), UQ8_8{}.Spec(), Conversion{ Shift: 0, LosesRange: true }},
		{UQ8_8{}.Spec(), Q15_16{}.Spec(), Conversion{ Shift: 8 }},
		{Q0_15{}.Spec(), Q0_31{}.Spec(), Conversion{ Shift: 16 }},
		{Q0_31{}.Spec(), Q3_60{}.Spec(), Conversion{ Shift: 29 }},
		{Q3_60{}.Spec(), Q31_32{}.Spec(), Conversion{ Shift: -28, LosesPrecision: true }},
		{UQ32_31{}.Spec(), Q31_32{}.Spec(), Conversion{ Shift: 1, LosesRange: true }},
	}

	for i, test := range tests {
		want := test.want
		want.From, want.To = test.from, test.to
		got := PlanConversion(test.from, test.to)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("test #%d: PlanConversion(%s, %s) mismatch (-want +got):\n%s", i, test.from, test.to, diff)
		}
	}

	str := PlanConversion(Q15_16{}.Spec(), Q7_8{}.Spec()).String()
	if str != "Q15.16 -> Q7.8: shift -8, loses precision and range" {
		t.Fatalf("unexpected description %q", str)
	}
}

// Checks that converting to B and back is the identity for every
// value of A whenever the conversion A -> B is lossless.
func checkRoundTrip[A, B Format](t *testing.T, rng *rand.Rand) {
	t.Helper()
	plan := PlanConversion(SpecOf[A](), SpecOf[B]())
	if !plan.Lossless() { return }

	values := []Q[A, Saturate]{
		MinOf[A, Saturate](), MaxOf[A, Saturate](), Zero[A, Saturate](), EpsilonOf[A, Saturate](),
	}
	for i := 0; i < 64; i++ {
		values = append(values, FromRaw[A, Saturate](rng.Int63() - rng.Int63()))
	}

	for _, value := range values {
		there := Convert[B, Wrap](value)
		back := Convert[A, Saturate](there)
		if back != value {
			t.Fatalf("%s -> %s -> back changed %s into %s", plan.From, plan.To, value, back)
		}
		if Compare(Convert[B, Saturate](value), value) != 0 {
			t.Fatalf("%s -> %s changed the value of %s", plan.From, plan.To, value)
		}
	}
}

func checkRoundTripsFrom[A Format](t *testing.T, rng *rand.Rand) {
	checkRoundTrip[A, Q7_8](t, rng)
	checkRoundTrip[A, Q3_12](t, rng)
	checkRoundTrip[A, Q0_15](t, rng)
	checkRoundTrip[A, Q15_16](t, rng)
	checkRoundTrip[A, Q5_25](t, rng)
	checkRoundTrip[A, Q0_31](t, rng)
	checkRoundTrip[A, Q47_16](t, rng)
	checkRoundTrip[A, Q31_32](t, rng)
	checkRoundTrip[A, Q3_60](t, rng)
	checkRoundTrip[A, UQ8_8](t, rng)
	checkRoundTrip[A, UQ1_15](t, rng)
	checkRoundTrip[A, UQ16_16](t, rng)
	checkRoundTrip[A, UQ32_31](t, rng)
}

func TestLosslessRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	checkRoundTripsFrom[Q7_8](t, rng)
	checkRoundTripsFrom[Q3_12](t, rng)
	checkRoundTripsFrom[Q0_15](t, rng)
	checkRoundTripsFrom[Q15_16](t, rng)
	checkRoundTripsFrom[Q5_25](t, rng)
	checkRoundTripsFrom[Q0_31](t, rng)
	checkRoundTripsFrom[Q47_16](t, rng)
	checkRoundTripsFrom[Q31_32](t, rng)
	checkRoundTripsFrom[Q3_60](t, rng)
	checkRoundTripsFrom[UQ8_8](t, rng)
	checkRoundTripsFrom[UQ1_15](t, rng)
	checkRoundTripsFrom[UQ16_16](t, rng)
	checkRoundTripsFrom[UQ32_31](t, rng)
}

func TestFloatRoundTrips(t *testing.T) {
	// every value with at most 53 significant bits survives the trip
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		raw := rng.Int63() >> 11
		if rng.Intn(2) == 0 { raw = -raw }
		value := FromRaw[Q31_32, Saturate](raw)
		back := MustFromFloat[Q31_32, Saturate](value.Float64())
		if back != value {
			t.Fatalf("float round trip changed %s into %s", value, back)
		}
	}
}

func TestStringAndFormat(t *testing.T) {
	tests := []struct {
		value fmt.Stringer
		out string
	}{
		{MustFromFloat[Q7_8, Saturate](1.5), "1.5"},
		{MustFromFloat[Q7_8, Saturate](-0.00390625), "-0.00390625"},
		{FromInt[Q15_16, Saturate](-42), "-42"},
		{MinOf[Q0_31, Saturate](), "-1"},
		{MaxOf[Q7_8, Saturate](), "127.99609375"},
		{EpsilonOf[Q31_32, Saturate](), "0.00000000023283064365386962890625"},
		{MaxOf[UQ1_15, Wrap](), "1.999969482421875"},
		{Zero[Q3_60, Saturate](), "0"},
	}

	for i, test := range tests {
		if got := test.value.String(); got != test.out {
			t.Fatalf("test #%d: expected %q, got %q", i, test.out, got)
		}
	}

	value := MustFromFloat[Q7_8, Saturate](1.5)
	got := fmt.Sprintf("%v|%s|%d|%x|%.2f|%6.1f|%g", value, value, value, value, value, value, value)
	if got != "1.5|1.5|384|180|1.50|   1.5|1.5" {
		t.Fatalf("unexpected formatting %q", got)
	}
	if got := fmt.Sprintf("%q", value); got != "%!q(Q7.8=1.5)" {
		t.Fatalf("unexpected formatting %q", got)
	}
	if value.Decimal().String() != "1.5" {
		t.Fatal("unexpected decimal")
	}
}
