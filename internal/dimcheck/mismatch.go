//go:build dimcheck

package dimcheck

import "github.com/tinne26/qformat/quantity"

// Each of these lines must fail to type check.
func mismatches(dist quantity.Quantity[quantity.Length, Num], time quantity.Quantity[quantity.Time, Num]) {
	_ = dist.Add(time)
	_ = dist.Cmp(time)
	speed, _ := quantity.Div(dist, time)
	_ = speed.Sub(dist)
}
