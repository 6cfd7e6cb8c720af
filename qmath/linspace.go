package qmath

import "golang.org/x/exp/constraints"

// Fills dst with len(dst) evenly spaced values from start to stop,
// both included. A single element slice gets start.
func Linspace[T constraints.Float](dst []T, start, stop T) {
	switch len(dst) {
	case 0: return
	case 1: dst[0] = start; return
	}

	last := len(dst) - 1
	step := (stop - start)/T(last)
	for i := 0; i < last; i++ {
		dst[i] = start + step*T(i)
	}
	dst[last] = stop
}
