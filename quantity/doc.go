// quantity attaches physical dimensions to fixed point (or float)
// magnitudes, so the compiler rejects adding a length to a time.
//
// A [Quantity] carries its dimension as a zero sized type parameter
// and stores only the magnitude:
//   meters := qformat.FromInt[qformat.Q15_16, qformat.Saturate](100)
//   seconds := qformat.MustFromFloat[qformat.Q15_16, qformat.Saturate](9.58)
//   dist := quantity.New[quantity.Length](meters)
//   time := quantity.New[quantity.Time](seconds)
//   dist.Add(time) // compile error
//
// Multiplication and division produce composite dimensions ([Prod],
// [Quot], [Inv], [Root]) whose exponent vectors are the sums and
// differences of the operands. Go can't compute types, so turning a
// composite back into a named dimension goes through [Cast], the only
// place where dimensions are checked at run time:
//   speed, err := quantity.Div(dist, time)
//   v, err := quantity.Cast[quantity.Velocity](speed)
package quantity
