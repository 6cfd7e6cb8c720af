package main

import "testing"
import "bytes"
import "errors"
import "math"
import "regexp"
import "strconv"
import "strings"

import "github.com/stretchr/testify/require"

import "github.com/tinne26/qformat"

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	out, _, err := runArgs(t, "convert", "1.5", "--format", "Q7.8")
	require.NoError(t, err)
	require.Contains(t, out, "format: Q7.8/saturate")
	require.Contains(t, out, "raw:    384")
	require.Contains(t, out, "hex:    0x180")
	require.Contains(t, out, "exact:  1.5")

	out, _, err = runArgs(t, "convert", "1000", "-f", "q7_8", "-p", "wrap")
	require.NoError(t, err)
	require.Contains(t, out, "exact:  -24")

	_, _, err = runArgs(t, "convert", "1.5", "--format", "Q9.9")
	require.ErrorContains(t, err, "unknown format")
	_, _, err = runArgs(t, "convert", "one", "--format", "Q7.8")
	require.Error(t, err)
}

func TestCalc(t *testing.T) {
	tests := []struct {
		args []string
		out string
	}{
		{[]string{"calc", "1.5", "+", "0.75", "--format", "Q7.8"}, "2.25"},
		{[]string{"calc", "1.5", "x", "1.5", "--format", "Q7.8"}, "2.25"},
		{[]string{"calc", "100", "*", "2", "--format", "Q7.8"}, "127.99609375"},
		{[]string{"calc", "1", "/", "3", "--format", "Q7.8", "--policy", "nearest"}, "0.33203125"},
	}
	for _, test := range tests {
		out, _, err := runArgs(t, test.args...)
		require.NoError(t, err, "args %v", test.args)
		require.Equal(t, test.out, strings.TrimSpace(out), "args %v", test.args)
	}

	_, _, err := runArgs(t, "calc", "1", "/", "0")
	require.True(t, errors.Is(err, qformat.ErrDivisionByZero), "got %v", err)
}

func TestFunc(t *testing.T) {
	out, _, err := runArgs(t, "func", "sqrt", "2", "--format", "Q15.16", "--policy", "nearest")
	require.NoError(t, err)
	require.Equal(t, "1.414215087890625", strings.TrimSpace(out))

	out, _, err = runArgs(t, "func", "exp", "0", "--format", "Q31.32")
	require.NoError(t, err)
	require.Equal(t, "1", strings.TrimSpace(out))

	out, _, err = runArgs(t, "func", "cordic", "0.5", "--iterations", "40", "--policy", "nearest")
	require.NoError(t, err)
	sine, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	require.InDelta(t, math.Sin(0.5), sine, 1e-4)

	_, _, err = runArgs(t, "func", "log", "0")
	require.True(t, errors.Is(err, qformat.ErrDomain), "got %v", err)
	_, _, err = runArgs(t, "func", "sin", "2000", "--format", "Q15.16")
	require.True(t, errors.Is(err, qformat.ErrDomain), "got %v", err)
	_, _, err = runArgs(t, "func", "cordic", "1", "--iterations", "0")
	require.ErrorContains(t, err, "iterations")
}

func TestLimitsAndPlan(t *testing.T) {
	out, _, err := runArgs(t, "limits", "--format", "Q7.8")
	require.NoError(t, err)
	require.Contains(t, out, "format:  Q7.8 (16 bits, 7 integer, 8 fractional)")
	require.Contains(t, out, "lowest:  -128\n")
	require.Contains(t, out, "highest: 127.99609375\n")
	require.Contains(t, out, "epsilon: 0.00390625\n")

	out, _, err = runArgs(t, "limits", "--format", "UQ1.15")
	require.NoError(t, err)
	require.Contains(t, out, "format:  UQ1.15 (16 bits, 1 integer, 15 fractional)")
	require.Contains(t, out, "highest: 1.999969482421875\n")

	for _, name := range formatNames() {
		_, _, err = runArgs(t, "limits", "--format", name)
		require.NoError(t, err, "format %s", name)
	}
	require.Len(t, formatNames(), 13)

	out, _, err = runArgs(t, "plan", "--from", "Q15.16", "--to", "Q7.8")
	require.NoError(t, err)
	require.Equal(t, "Q15.16 -> Q7.8: shift -8, loses precision and range", strings.TrimSpace(out))

	out, _, err = runArgs(t, "version")
	require.NoError(t, err)
	require.Equal(t, "qcalc " + version, strings.TrimSpace(out))
}

func TestSweep(t *testing.T) {
	out, stderr, err := runArgs(t, "--log-format", "json", "sweep", "sin", "--samples", "2000", "--workers", "3")
	require.NoError(t, err)
	require.Contains(t, out, "sin in Q15.16/saturate")
	require.Contains(t, out, "samples: 2,000 (0 outside the format range)")
	require.Contains(t, stderr, `"msg":"sweep done"`)

	match := regexp.MustCompile(`max error: ([0-9.]+) ulp`).FindStringSubmatch(out)
	require.Len(t, match, 2)
	maxULP, err := strconv.ParseFloat(match[1], 64)
	require.NoError(t, err)
	require.LessOrEqual(t, maxULP, 1.0)

	for _, name := range []string{"cos", "exp", "log", "sqrt", "reciprocal", "cordic"} {
		_, _, err := runArgs(t, "sweep", name, "--samples", "500", "--format", "Q31.32", "--policy", "nearest")
		require.NoError(t, err, "sweeping %s", name)
	}
	_, _, err = runArgs(t, "sweep", "sin", "--samples", "1")
	require.Error(t, err)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("QCALC_LOG_LEVEL", "debug")
	t.Setenv("QCALC_LOG_FORMAT", "json")
	_, stderr, err := runArgs(t, "version")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"running command"`)
	require.Contains(t, stderr, `"level":"DEBUG"`)
}

func TestRegistry(t *testing.T) {
	require.Len(t, registry, 13)
	for name, policies := range registry {
		require.Len(t, policies, len(policyNames))
		for _, policy := range policyNames {
			bound, found := policies[policy]
			require.True(t, found, "%s misses policy %s", name, policy)
			require.Equal(t, name, bound.Spec().String())
			require.Equal(t, policy, bound.Policy())
		}
	}
	require.Equal(t, "Q15.16", normalizeFormat("q15_16"))

	bound, err := lookup("Q15.16", "truncate")
	require.NoError(t, err)
	diff, err := bound.Calc("1", "-", "3")
	require.NoError(t, err)
	require.Equal(t, "-2", diff)
	_, err = bound.Calc("1", "%", "3")
	require.ErrorContains(t, err, "unknown operator")
	_, err = lookup("Q15.16", "ceil")
	require.ErrorContains(t, err, "unknown policy")
}
