package main

import "context"
import "sort"
import "strings"

import "github.com/pkg/errors"

import "github.com/tinne26/qformat"

// Operations on one format and policy combination. Values go in and
// out as text, so commands don't need to know the concrete types.
type binding interface {
	Spec() qformat.Spec
	Policy() string
	Describe(value string) (description, error)
	Calc(a, op, b string) (string, error)
	Eval(function string, x string, iterations int) (string, error)
	Limits() (lowest, highest, epsilon string)
	Sweep(ctx context.Context, request sweepRequest) (sweepReport, error)
}

type description struct {
	Raw int64
	Exact string
	Float float64
}

// Format names to policy names to bindings.
var registry = map[string]map[string]binding{}

var policyNames = []string{ "saturate", "wrap", "nearest", "truncate" }

func register[F qformat.Format]() {
	spec := qformat.SpecOf[F]()
	registry[spec.String()] = map[string]binding{
		"saturate": bound[F, qformat.Saturate]{ policy: "saturate" },
		"wrap":     bound[F, qformat.Wrap]{ policy: "wrap" },
		"nearest":  bound[F, qformat.RoundNearestSaturate]{ policy: "nearest" },
		"truncate": bound[F, qformat.TruncateWrap]{ policy: "truncate" },
	}
}

func init() {
	register[qformat.Q7_8]()
	register[qformat.Q3_12]()
	register[qformat.Q0_15]()
	register[qformat.Q15_16]()
	register[qformat.Q5_25]()
	register[qformat.Q0_31]()
	register[qformat.Q47_16]()
	register[qformat.Q31_32]()
	register[qformat.Q3_60]()
	register[qformat.UQ8_8]()
	register[qformat.UQ1_15]()
	register[qformat.UQ16_16]()
	register[qformat.UQ32_31]()
}

// Accepts "Q15.16", "q15_16" and similar spellings.
func normalizeFormat(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), "_", ".")
}

func formatNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry { names = append(names, name) }
	sort.Strings(names)
	return names
}

func lookup(format, policy string) (binding, error) {
	policies, found := registry[normalizeFormat(format)]
	if !found {
		return nil, errors.Errorf("unknown format %q (available: %s)", format, strings.Join(formatNames(), ", "))
	}
	bound, found := policies[strings.ToLower(policy)]
	if !found {
		return nil, errors.Errorf("unknown policy %q (available: %s)", policy, strings.Join(policyNames, ", "))
	}
	return bound, nil
}

func lookupSpec(format string) (qformat.Spec, error) {
	bound, err := lookup(format, "saturate")
	if err != nil { return qformat.Spec{}, err }
	return bound.Spec(), nil
}
