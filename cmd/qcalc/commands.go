package main

import "context"
import "fmt"
import "log/slog"

import "github.com/alecthomas/kong"
import "golang.org/x/text/language"
import "golang.org/x/text/message"

import "github.com/tinne26/qformat"

// Format and policy flags shared by most commands.
type target struct {
	Format string `short:"f" default:"Q15.16" help:"Fixed point format, like Q15.16 or UQ8.8."`
	Policy string `short:"p" default:"saturate" enum:"saturate,wrap,nearest,truncate" help:"Overflow and rounding policy (${enum})."`
}

func (self target) binding() (binding, error) {
	return lookup(self.Format, self.Policy)
}

type ConvertCmd struct {
	Value string `arg:"" help:"Decimal value."`
	Target target `embed:""`
}

func (self *ConvertCmd) Run(ctx *kong.Context) error {
	bound, err := self.Target.binding()
	if err != nil { return err }
	desc, err := bound.Describe(self.Value)
	if err != nil { return err }
	fmt.Fprintf(ctx.Stdout, "format: %s/%s\n", bound.Spec(), bound.Policy())
	fmt.Fprintf(ctx.Stdout, "raw:    %d\n", desc.Raw)
	fmt.Fprintf(ctx.Stdout, "hex:    %#x\n", desc.Raw)
	fmt.Fprintf(ctx.Stdout, "exact:  %s\n", desc.Exact)
	fmt.Fprintf(ctx.Stdout, "float:  %g\n", desc.Float)
	return nil
}

type CalcCmd struct {
	A string `arg:"" help:"First operand."`
	Op string `arg:"" enum:"+,-,*,x,/" help:"Operator."`
	B string `arg:"" help:"Second operand."`
	Target target `embed:""`
}

func (self *CalcCmd) Run(ctx *kong.Context) error {
	bound, err := self.Target.binding()
	if err != nil { return err }
	result, err := bound.Calc(self.A, self.Op, self.B)
	if err != nil { return err }
	fmt.Fprintln(ctx.Stdout, result)
	return nil
}

type FuncCmd struct {
	Name string `arg:"" enum:"sin,cos,exp,log,sqrt,reciprocal,cordic" help:"Function (${enum})."`
	X string `arg:"" help:"Argument."`
	Iterations int `default:"24" help:"Iterations for the cordic function."`
	Target target `embed:""`
}

func (self *FuncCmd) Run(ctx *kong.Context) error {
	bound, err := self.Target.binding()
	if err != nil { return err }
	result, err := bound.Eval(self.Name, self.X, self.Iterations)
	if err != nil { return err }
	fmt.Fprintln(ctx.Stdout, result)
	return nil
}

type SweepCmd struct {
	Name string `arg:"" enum:"sin,cos,exp,log,sqrt,reciprocal,cordic" help:"Function (${enum})."`
	Samples int `default:"10000" help:"Number of evenly spaced inputs."`
	Workers int `default:"4" help:"Number of concurrent workers."`
	Iterations int `default:"24" help:"Iterations for the cordic function."`
	Target target `embed:""`
}

func (self *SweepCmd) Run(ctx *kong.Context, logger *slog.Logger, background context.Context) error {
	bound, err := self.Target.binding()
	if err != nil { return err }
	report, err := bound.Sweep(background, sweepRequest{
		Function: self.Name,
		Samples: self.Samples,
		Workers: self.Workers,
		Iterations: self.Iterations,
		Logger: logger,
	})
	if err != nil { return err }
	logger.Info("sweep done", "function", report.Function, "format", report.Spec.String(), "elapsed", report.Elapsed)

	printer := message.NewPrinter(language.English)
	printer.Fprintf(ctx.Stdout, "%s in %s/%s\n", report.Function, report.Spec, report.Policy)
	printer.Fprintf(ctx.Stdout, "samples: %d (%d outside the format range)\n", report.Samples, report.Skipped)
	printer.Fprintf(ctx.Stdout, "max error: %.3f ulp at %g\n", report.MaxULP, report.WorstInput)
	printer.Fprintf(ctx.Stdout, "mean error: %.3f ulp\n", report.MeanULP)
	return nil
}

type LimitsCmd struct {
	Format string `short:"f" default:"Q15.16" help:"Fixed point format."`
}

func (self *LimitsCmd) Run(ctx *kong.Context) error {
	bound, err := lookup(self.Format, "saturate")
	if err != nil { return err }
	lowest, highest, epsilon := bound.Limits()
	spec := bound.Spec()
	fmt.Fprintf(ctx.Stdout, "format:  %s (%d bits, %d integer, %d fractional)\n", spec, spec.TotalBits, spec.IntegerBits(), spec.FractionBits)
	fmt.Fprintf(ctx.Stdout, "lowest:  %s\n", lowest)
	fmt.Fprintf(ctx.Stdout, "highest: %s\n", highest)
	fmt.Fprintf(ctx.Stdout, "epsilon: %s\n", epsilon)
	return nil
}

type PlanCmd struct {
	From string `required:"" help:"Source format."`
	To string `required:"" help:"Target format."`
}

func (self *PlanCmd) Run(ctx *kong.Context) error {
	from, err := lookupSpec(self.From)
	if err != nil { return err }
	to, err := lookupSpec(self.To)
	if err != nil { return err }
	fmt.Fprintln(ctx.Stdout, qformat.PlanConversion(from, to))
	return nil
}

type VersionCmd struct{}

func (self *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "qcalc %s\n", version)
	return nil
}
