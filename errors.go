package qformat

import "github.com/pkg/errors"

// Returned by [Q.Div], [DivTo] and the conversions that divide when
// the divisor is exactly zero.
var ErrDivisionByZero = errors.New("fixed point division by zero")

// Returned when converting NaN or infinite floating point values.
var ErrNonFiniteInput = errors.New("non-finite floating point input")

// Returned by functions evaluated outside their domain, like the
// square root of a negative value. The qmath subpackage uses the same
// sentinel.
var ErrDomain = errors.New("argument outside of function domain")
