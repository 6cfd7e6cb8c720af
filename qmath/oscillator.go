package qmath

import "math"

// Sample generator for periodic signals. The phase advances by
// 2*pi*waveFrequency/samplingFrequency on each sample, and the
// generator function converts it into a sample:
//   sine := qmath.NewOscillator(func(phase float64) float64 {
//   	return math.Sin(phase)
//   }, 440, 44100)
//   sine.Fill(buffer)
//
// The sample index is kept modulo the sampling frequency, so phases
// stay in [0, 2*pi) no matter how long the oscillator runs. The index
// is rounded on each step, which makes the effective frequency an
// integer.
type Oscillator[T any] struct {
	generator func(phase float64) T
	waveFrequency float64
	samplingFrequency uint32
	index float64
}

// Creates a new oscillator. The first generated sample has phase 0.
// The function panics if samplingFrequency is zero or the generator
// is nil.
func NewOscillator[T any](generator func(phase float64) T, waveFrequency float64, samplingFrequency uint32) *Oscillator[T] {
	if samplingFrequency == 0 { panic("qmath.NewOscillator: zero sampling frequency") }
	if generator == nil { panic("qmath.NewOscillator: nil generator") }
	return &Oscillator[T]{
		generator: generator,
		waveFrequency: waveFrequency,
		samplingFrequency: samplingFrequency,
		index: -waveFrequency,
	}
}

// Returns the phase of the next sample, in [0, 2*pi).
func (self *Oscillator[T]) nextPhase() float64 {
	fs := float64(self.samplingFrequency)
	self.index = math.Mod(math.Round(self.index + self.waveFrequency), fs)
	if self.index < 0 { self.index += fs }
	return 2*math.Pi*self.index/fs
}

// Returns the next sample.
func (self *Oscillator[T]) Next() T {
	return self.generator(self.nextPhase())
}

// Fills the buffer with consecutive samples.
func (self *Oscillator[T]) Fill(buffer []T) {
	for i := range buffer {
		buffer[i] = self.Next()
	}
}

// Restarts the oscillator, so the next sample has phase 0 again.
func (self *Oscillator[T]) Reset() {
	self.index = -self.waveFrequency
}
