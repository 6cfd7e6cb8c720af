package main

import "context"
import "log/slog"
import "math"
import "time"

import "github.com/pkg/errors"
import "golang.org/x/sync/errgroup"

import "github.com/tinne26/qformat"
import "github.com/tinne26/qformat/qmath"

type sweepRequest struct {
	Function string
	Samples int
	Workers int
	Iterations int
	Logger *slog.Logger
}

type sweepReport struct {
	Function string
	Spec qformat.Spec
	Policy string
	Samples int
	Skipped int // reference outside of the format range
	MaxULP float64
	MeanULP float64
	WorstInput float64
	Elapsed time.Duration
}

type sweepPartial struct {
	evaluated int
	skipped int
	sumULP float64
	maxULP float64
	worstInput float64
}

func (self *sweepPartial) merge(other sweepPartial) {
	if other.evaluated > 0 && (self.evaluated == 0 || other.maxULP > self.maxULP) {
		self.maxULP, self.worstInput = other.maxULP, other.worstInput
	}
	self.evaluated += other.evaluated
	self.skipped += other.skipped
	self.sumULP += other.sumULP
}

// Evaluates the function over evenly spaced inputs of its domain and
// measures the error against the float64 reference, in ulps. Inputs
// are split among the workers, each one accumulating its own partial
// results.
func (self bound[F, P]) Sweep(ctx context.Context, request sweepRequest) (sweepReport, error) {
	fn, err := self.kernel(request.Function, request.Iterations)
	if err != nil { return sweepReport{}, err }
	reference := references[request.Function]
	if request.Samples < 2 { return sweepReport{}, errors.New("at least two samples are needed") }
	lo, hi := self.domain(request.Function)
	if lo > hi {
		return sweepReport{}, errors.Errorf("%s has no valid inputs in %s", request.Function, self.Spec())
	}

	start := time.Now()
	inputs := make([]float64, request.Samples)
	qmath.Linspace(inputs, lo, hi)
	workers := max(1, min(request.Workers, len(inputs)))
	chunk := (len(inputs) + workers - 1)/workers
	partials := make([]sweepPartial, workers)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for worker := 0; worker < workers; worker++ {
		first, last := worker*chunk, min((worker + 1)*chunk, len(inputs))
		if first >= last { break }
		worker := worker // per-iteration copy (go directive < 1.22)
		group.Go(func() error {
			err := self.sweepRange(ctx, fn, reference, inputs[first:last], &partials[worker])
			request.Logger.Debug("sweep worker done", "worker", worker, "inputs", last - first, "max_ulp", partials[worker].maxULP)
			return err
		})
	}
	if err := group.Wait(); err != nil { return sweepReport{}, err }

	var total sweepPartial
	for _, partial := range partials { total.merge(partial) }
	report := sweepReport{
		Function: request.Function,
		Spec: self.Spec(),
		Policy: self.policy,
		Samples: len(inputs),
		Skipped: total.skipped,
		MaxULP: total.maxULP,
		WorstInput: total.worstInput,
		Elapsed: time.Since(start),
	}
	if total.evaluated > 0 { report.MeanULP = total.sumULP/float64(total.evaluated) }
	return report, nil
}

func (self bound[F, P]) sweepRange(ctx context.Context, fn kernel[F, P], reference func(float64) float64, inputs []float64, partial *sweepPartial) error {
	lowest := qformat.MinOf[F, P]().Float64()
	highest := qformat.MaxOf[F, P]().Float64()
	ulp := qformat.EpsilonOf[F, P]().Float64()
	for i, input := range inputs {
		if i % 1024 == 0 && ctx.Err() != nil { return ctx.Err() }
		x, err := qformat.FromFloat[F, P](input)
		if err != nil { return err }
		want := reference(x.Float64())
		if math.IsNaN(want) || want < lowest || want > highest {
			partial.skipped += 1
			continue
		}

		got, err := fn(x)
		if err != nil { return errors.Wrapf(err, "sweeping %s", self.Spec()) }
		errULP := math.Abs(got.Float64() - want)/ulp
		partial.evaluated += 1
		partial.sumULP += errULP
		if errULP >= partial.maxULP {
			partial.maxULP, partial.worstInput = errULP, x.Float64()
		}
	}
	return nil
}
