// qformat is a package for generic fixed point arithmetic in Golang,
// designed for code that needs exact, deterministic results (DSP
// pipelines, audio engines, simulations that must replay bit for bit).
//
// A fixed point value stores a single scaled integer: a [Q] with 8
// fractional bits storing 384 represents 384/2^8 = 1.5. The format
// (total bits, fractional bits, signedness) and the overflow [Policy]
// are type parameters, so the compiler keeps Q[Q7_8, Saturate] and
// Q[Q7_8, Wrap] apart and nothing is decided at run time:
//   a := qformat.MustFromFloat[qformat.Q7_8, qformat.Saturate](1.5)
//   b := qformat.MustFromFloat[qformat.Q7_8, qformat.Saturate](0.75)
//   sum := a.Add(b) // sum.Raw() == 576, sum.Float64() == 2.25
//
// Every operation computes in a 128-bit intermediate (see the wide
// subpackage) and then lets the policy bring the result back into the
// format. Policies never fail: overflow and precision loss are always
// resolved deterministically. The only reportable failures are
// [ErrDivisionByZero] and [ErrNonFiniteInput].
//
// Formats can be declared by anyone: any zero sized type with a
// Spec() method returning a valid [Spec] works. Common ones like
// [Q15_16], [Q0_15] or [UQ8_8] are predefined.
//
// Related subpackages:
//  - qmath: square roots, trigonometry, exponentials and logarithms.
//  - quantity: physical dimensions checked by the compiler.
//  - debugview: debugger friendly rendering of fixed point values.
package qformat
