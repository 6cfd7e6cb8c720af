package main

import "math"

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/qmath"

type bound[F qformat.Format, P qformat.Policy] struct {
	policy string
}

type kernel[F qformat.Format, P qformat.Policy] func(qformat.Q[F, P]) (qformat.Q[F, P], error)

// Float64 references for the sweep.
var references = map[string]func(float64) float64{
	"sin": math.Sin,
	"cos": math.Cos,
	"exp": math.Exp,
	"log": math.Log,
	"sqrt": math.Sqrt,
	"reciprocal": func(x float64) float64 { return 1/x },
	"cordic": math.Sin,
}

func (self bound[F, P]) Spec() qformat.Spec { return qformat.SpecOf[F]() }
func (self bound[F, P]) Policy() string { return self.policy }

func (self bound[F, P]) parse(value string) (qformat.Q[F, P], error) {
	return qformat.Parse[F, P](value)
}

func (self bound[F, P]) Describe(value string) (description, error) {
	q, err := self.parse(value)
	if err != nil { return description{}, err }
	return description{ Raw: q.Raw(), Exact: q.String(), Float: q.Float64() }, nil
}

func (self bound[F, P]) Calc(a, op, b string) (string, error) {
	x, err := self.parse(a)
	if err != nil { return "", err }
	y, err := self.parse(b)
	if err != nil { return "", err }

	var result qformat.Q[F, P]
	switch op {
	case "+": result = x.Add(y)
	case "-": result = x.Sub(y)
	case "*", "x": result = x.Mul(y)
	case "/":
		result, err = x.Div(y)
		if err != nil { return "", err }
	default:
		return "", errors.Errorf("unknown operator %q", op)
	}
	return result.String(), nil
}

func (self bound[F, P]) kernel(function string, iterations int) (kernel[F, P], error) {
	switch function {
	case "sin": return qmath.Sin[F, P], nil
	case "cos": return qmath.Cos[F, P], nil
	case "exp": return qmath.Exp[F, P], nil
	case "log": return qmath.Log[F, P], nil
	case "sqrt": return qmath.Sqrt[F, P], nil
	case "reciprocal": return qmath.Reciprocal[F, P], nil
	case "cordic":
		if iterations < 1 { return nil, errors.Errorf("invalid number of iterations %d", iterations) }
		return func(x qformat.Q[F, P]) (qformat.Q[F, P], error) {
			return qmath.CordicSin(x, iterations)
		}, nil
	default:
		return nil, errors.Errorf("unknown function %q", function)
	}
}

func (self bound[F, P]) Eval(function string, x string, iterations int) (string, error) {
	fn, err := self.kernel(function, iterations)
	if err != nil { return "", err }
	value, err := self.parse(x)
	if err != nil { return "", err }
	result, err := fn(value)
	if err != nil { return "", err }
	return result.String(), nil
}

func (self bound[F, P]) Limits() (string, string, string) {
	lowest := qformat.MinOf[F, P]()
	highest := qformat.MaxOf[F, P]()
	epsilon := qformat.EpsilonOf[F, P]()
	return lowest.String(), highest.String(), epsilon.String()
}

// Input range of a kernel function within the format.
func (self bound[F, P]) domain(function string) (float64, float64) {
	lowest := qformat.MinOf[F, P]().Float64()
	highest := qformat.MaxOf[F, P]().Float64()
	epsilon := qformat.EpsilonOf[F, P]().Float64()
	switch function {
	case "sin", "cos", "cordic":
		return math.Max(lowest, -qmath.MaxTrigArgument), math.Min(highest, qmath.MaxTrigArgument)
	case "exp":
		return math.Max(lowest, -qmath.MaxExpArgument), math.Min(highest, math.Min(qmath.MaxExpArgument, math.Log(highest)))
	case "reciprocal":
		return math.Max(epsilon, 1/highest), highest
	default: // log, sqrt
		return epsilon, highest
	}
}
