package qformat

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/qformat/wide"

// Interoperability with [golang.org/x/image/math/fixed], the fixed
// point types used by font rasterizers and vector graphics packages.
// Conversions go through the policy of the value like any other
// format conversion.

var int26_6 = Spec{ TotalBits: 32, FractionBits:  6, Signed: true }
var int52_12 = Spec{ TotalBits: 64, FractionBits: 12, Signed: true }

// Converts the value to a [fixed.Int26_6].
func (self Q[F, P]) ToInt26_6() fixed.Int26_6 {
	shift := int(specOf[F]().FractionBits) - int(int26_6.FractionBits)
	return fixed.Int26_6(reduce[P](self.widen(), shift, int26_6))
}

// Converts the value to a [fixed.Int52_12].
func (self Q[F, P]) ToInt52_12() fixed.Int52_12 {
	shift := int(specOf[F]().FractionBits) - int(int52_12.FractionBits)
	return fixed.Int52_12(reduce[P](self.widen(), shift, int52_12))
}

// Creates a value from a [fixed.Int26_6].
func FromInt26_6[F Format, P Policy](value fixed.Int26_6) Q[F, P] {
	spec := specOf[F]()
	shift := int(int26_6.FractionBits) - int(spec.FractionBits)
	return Q[F, P]{ raw: reduce[P](wide.FromInt64(int64(value)), shift, spec) }
}

// Creates a value from a [fixed.Int52_12].
func FromInt52_12[F Format, P Policy](value fixed.Int52_12) Q[F, P] {
	spec := specOf[F]()
	shift := int(int52_12.FractionBits) - int(spec.FractionBits)
	return Q[F, P]{ raw: reduce[P](wide.FromInt64(int64(value)), shift, spec) }
}

// Creates a [fixed.Point26_6] from two values of the same type.
func ToPoint26_6[F Format, P Policy](x, y Q[F, P]) fixed.Point26_6 {
	return fixed.Point26_6{ X: x.ToInt26_6(), Y: y.ToInt26_6() }
}
