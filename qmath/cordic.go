package qmath

import "math"

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"

// Largest useful number of iterations for [CordicSin]. Larger values
// are clamped.
const CordicMaxIterations = len(cordicAngles)

// Sine of x computed with the given number of CORDIC rotations after
// the same range reduction [Sin] uses. Each iteration adds roughly one
// bit of precision, see [CordicMaxError]. Returns [ErrDomain] when
// |x| > [MaxTrigArgument]. The function panics if iterations < 1.
func CordicSin[F qformat.Format, P qformat.Policy](x qformat.Q[F, P], iterations int) (qformat.Q[F, P], error) {
	if iterations < 1 { panic("qmath.CordicSin: iterations must be at least 1") }
	iterations = min(iterations, CordicMaxIterations)
	quadrant, r, err := reduceHalfPi(x)
	if err != nil { return qformat.Q[F, P]{}, errors.Wrapf(err, "cordic sin(%s)", x) }

	// rotate (K, 0) by r: ends at (cos r, sin r)
	cx, cy := cordicGains[min(iterations, len(cordicGains) - 1)], int64(0)
	z := r
	for i := 0; i < iterations; i++ {
		dx, dy := cy >> uint(i), cx >> uint(i)
		if z >= 0 {
			cx, cy = cx - dx, cy + dy
			z -= cordicAngles[i]
		} else {
			cx, cy = cx + dx, cy - dy
			z += cordicAngles[i]
		}
	}

	var value int64
	switch quadrant & 3 {
	case 0: value = cy
	case 1: value = cx
	case 2: value = -cy
	default: value = -cx
	}
	return fromWork[F, P](value), nil
}

// Upper bound of the absolute error of [CordicSin] with the given
// number of iterations, before the final rounding into the format.
func CordicMaxError(iterations int) float64 {
	iterations = max(1, min(iterations, CordicMaxIterations))
	return math.Ldexp(1, 1 - iterations) + math.Ldexp(float64(iterations), -56)
}
