package qmath

import "github.com/tinne26/qformat"

// Square root of x. Returns [ErrDomain] for negative values. Same as
// [qformat.Q.Sqrt], which already computes the exact integer root.
func Sqrt[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	return x.Sqrt()
}

// Format used to hold the constant 1 for [Reciprocal].
type unitFormat struct{}
func (unitFormat) Spec() qformat.Spec {
	return qformat.Spec{ TotalBits: 2, FractionBits: 0, Signed: true }
}

// Returns 1/x, computed with an exact wide division and rounded by the
// policy. Returns [qformat.ErrDivisionByZero] if x is zero.
func Reciprocal[F qformat.Format, P qformat.Policy](x qformat.Q[F, P]) (qformat.Q[F, P], error) {
	return qformat.DivTo[F](qformat.FromInt[unitFormat, P](1), x)
}
