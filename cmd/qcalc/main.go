// qcalc is a small command line calculator for fixed point formats.
// It converts decimal values, evaluates operations and kernel
// functions, and measures the kernel errors against float64 math:
//   qcalc convert 3.14159 --format Q7.8 --policy nearest
//   qcalc calc 1.5 + 0.75 --format Q7.8
//   qcalc func sin 0.5 --format Q15.16
//   qcalc sweep exp --format Q31.32 --samples 100000 --workers 8
//   qcalc plan --from Q15.16 --to Q7.8
package main

import "context"
import "io"
import "log/slog"
import "os"

import "github.com/alecthomas/kong"

import "github.com/tinne26/qformat/internal/logging"

const version = "0.1.0"

type CLI struct {
	LogLevel  string `name:"log-level" default:"info" env:"QCALC_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" default:"text" env:"QCALC_LOG_FORMAT" enum:"text,json" help:"Log format (${enum})."`

	Convert ConvertCmd `cmd:"" help:"Convert a decimal value into a fixed point format."`
	Calc    CalcCmd    `cmd:"" help:"Evaluate a binary operation: + - * (or x) /."`
	Func    FuncCmd    `cmd:"" help:"Evaluate a math kernel function."`
	Sweep   SweepCmd   `cmd:"" help:"Measure the error of a kernel function against float64 math."`
	Limits  LimitsCmd  `cmd:"" help:"Print the limits of a format."`
	Plan    PlanCmd    `cmd:"" help:"Describe the conversion between two formats."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

func (self *CLI) logger(stderr io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(self.LogLevel)
	if err != nil { return nil, err }
	format, err := logging.ParseFormat(self.LogFormat)
	if err != nil { return nil, err }
	return logging.Init(stderr, level, format), nil
}

// Parses the arguments and runs the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("qcalc"),
		kong.Description("Fixed point calculator."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{ Compact: true }),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	if err != nil { return err }
	ctx, err := parser.Parse(args)
	if err != nil { return err }

	logger, err := cli.logger(stderr)
	if err != nil { return err }
	logger.Debug("running command", "command", ctx.Command())
	return ctx.Run(logger)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		slog.Error("qcalc failed", "error", err)
		os.Exit(1)
	}
}
