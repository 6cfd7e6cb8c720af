package qmath

import "math"

import "github.com/pkg/errors"
import "golang.org/x/exp/constraints"

// Returns the Pearson correlation coefficient of the two samples, in
// [-1, 1]. Returns [ErrEmptyInput] if the samples are empty and
// [ErrLengthMismatch] if their lengths differ. Constant samples have
// no defined correlation and give NaN.
func PearsonCorrelation[T constraints.Float](left, right []T) (T, error) {
	if len(left) != len(right) {
		return 0, errors.Wrapf(ErrLengthMismatch, "%d vs %d samples", len(left), len(right))
	}
	if len(left) == 0 { return 0, ErrEmptyInput }

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range left {
		x, y := float64(left[i]), float64(right[i])
		sumX += x
		sumY += y
		sumXY += x*y
		sumXX += x*x
		sumYY += y*y
	}

	n := float64(len(left))
	numerator := n*sumXY - sumX*sumY
	left2, right2 := n*sumXX - sumX*sumX, n*sumYY - sumY*sumY
	if left2 <= 0 || right2 <= 0 { return T(math.NaN()), nil }
	return T(numerator / (math.Sqrt(left2)*math.Sqrt(right2))), nil
}
