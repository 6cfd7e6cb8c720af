// wide is a small utility subpackage defining the signed 128-bit
// [Int] type that qformat uses as the intermediate representation for
// every arithmetic operation.
//
// A product of two 64-bit raw values needs up to 126 bits, and aligning
// the fractional bits of two formats before adding them needs up to 127,
// so a single machine word is never enough. The type only offers what the
// fixed point engine needs: addition, multiplication by 64-bit factors,
// shifts, comparisons and a shifted division with a sticky remainder flag.
//
// Values are immutable and every method returns a new [Int].
package wide
