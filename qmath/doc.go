// qmath implements square roots, trigonometry, exponentials and
// logarithms for [qformat.Q] values using only integer arithmetic.
//
// Every kernel works internally with 60 fractional bits and 128-bit
// products. The polynomial coefficients are Go constant expressions
// and the range reduction constants are generated tables, so results
// are bit for bit identical across platforms and compilers:
//   x := qformat.MustFromFloat[qformat.Q15_16, qformat.RoundNearestSaturate](0.5)
//   y, err := qmath.Sin(x) // y.Float64() == 0.47943115234375
//
// Results are brought into the format of the argument with its own
// policy, so Saturate floors and clamps while RoundNearestSaturate
// rounds to nearest. The documented error bounds ([TrigMaxULP],
// [ExpMaxULP], [LogMaxULP], [SqrtMaxULP]) hold for formats with up to
// 56 fractional bits.
//
// The package also includes a few tools for signal experiments: a
// CORDIC sine with a configurable number of iterations, an [Oscillator]
// sample generator, [Linspace] and [PearsonCorrelation].
package qmath
