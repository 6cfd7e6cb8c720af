package qmath

import "testing"
import "math"

import "github.com/tinne26/qformat"

func TestOscillatorPhases(t *testing.T) {
	osc := NewOscillator(func(phase float64) float64 { return phase }, 1, 4)
	expected := []float64{0, math.Pi/2, math.Pi, 3*math.Pi/2, 0, math.Pi/2}
	for i, want := range expected {
		if got := osc.Next(); math.Abs(got - want) > 1e-15 {
			t.Fatalf("sample #%d: expected phase %f, got %f", i, want, got)
		}
	}

	osc.Reset()
	if got := osc.Next(); got != 0 {
		t.Fatalf("expected phase 0 after reset, got %f", got)
	}
}

func TestOscillatorFixedPointSine(t *testing.T) {
	type sample = qformat.Q[qformat.Q0_15, qformat.RoundNearestSaturate]
	osc := NewOscillator(func(phase float64) sample {
		x := qformat.MustFromFloat[qformat.Q5_25, qformat.RoundNearestSaturate](phase)
		y, err := Sin(x)
		if err != nil { panic(err) }
		return qformat.Convert[qformat.Q0_15, qformat.RoundNearestSaturate](y)
	}, 441, 44100)

	buffer := make([]sample, 200)
	osc.Fill(buffer)
	if !buffer[0].IsZero() {
		t.Fatalf("expected first sample 0, got %s", buffer[0])
	}
	for i, value := range buffer {
		want := math.Sin(2*math.Pi*float64(i % 100)/100)
		if math.Abs(value.Float64() - want) > 2e-4 {
			t.Fatalf("sample #%d: expected %f, got %s", i, want, value)
		}
	}
	if buffer[25] != buffer[125] {
		t.Fatal("expected a periodic signal")
	}
}

func TestOscillatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("expected panic on zero sampling frequency") }
	}()
	NewOscillator(func(float64) int { return 0 }, 1, 0)
}
