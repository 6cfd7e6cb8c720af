package qmath

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"

// Returned by functions evaluated outside their domain. Same value as
// [qformat.ErrDomain], so errors.Is works with either.
var ErrDomain = qformat.ErrDomain

// Returned by [PearsonCorrelation] for empty samples.
var ErrEmptyInput = errors.New("empty input")

// Returned by [PearsonCorrelation] when the samples differ in length.
var ErrLengthMismatch = errors.New("input length mismatch")
