package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/karatmul/internal/bigint"
	"github.com/agbru/karatmul/internal/cli"
	apperrors "github.com/agbru/karatmul/internal/errors"
	"github.com/agbru/karatmul/internal/logging"
	"github.com/agbru/karatmul/internal/metrics"
	"github.com/agbru/karatmul/internal/sysmon"
	"github.com/agbru/karatmul/internal/ui"
)

var operandNames = [2]string{"first", "second"}

// runCalculate reads, parses and multiplies two operands, then prints the
// product. The context is checked between stages.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, "karatmul.run")
	defer span.End()

	res, err := a.multiply(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return a.handleError(err)
	}

	_, renderSpan := a.tracer.Start(ctx, "karatmul.render")
	res.Elapsed = time.Since(start)
	err = cli.DisplayResultWithConfig(out, a.ErrWriter, res, cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
	})
	renderSpan.End()
	if err != nil {
		return a.handleError(err)
	}

	if a.Config.Details {
		cli.DisplayDetails(a.ErrWriter, cli.Details{
			Result: res,
			Memory: mem.Snapshot().Delta(before),
			Host:   sysmon.Sample(),
		})
	}

	if a.Config.MetricsFile != "" {
		if err := a.recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			return a.handleError(apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsFile))
		}
	}
	return apperrors.ExitSuccess
}

// multiply runs the read, parse and multiply stages.
func (a *Application) multiply(ctx context.Context) (cli.Result, error) {
	maxDigits := a.Config.MaxDigits
	if maxDigits == 0 {
		maxDigits = a.Multiplier.MaxDigits()
	}

	_, readSpan := a.tracer.Start(ctx, "karatmul.read")
	tokens, err := a.readOperands(maxDigits)
	readSpan.End()
	if err != nil {
		return cli.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return cli.Result{}, err
	}

	_, parseSpan := a.tracer.Start(ctx, "karatmul.parse",
		trace.WithAttributes(attribute.Int("karatmul.max_digits", maxDigits)))
	var ops [2]bigint.BigInt
	for i, tok := range tokens {
		ops[i], err = bigint.Parse(tok, bigint.WithMaxDigits(maxDigits))
		if err != nil {
			parseSpan.End()
			return cli.Result{}, operandError(err, operandNames[i])
		}
	}
	parseSpan.SetAttributes(
		attribute.Int("karatmul.first_digits", ops[0].Digits()),
		attribute.Int("karatmul.second_digits", ops[1].Digits()),
	)
	parseSpan.End()
	a.logger.Debug("operands parsed",
		logging.Int("first_digits", ops[0].Digits()),
		logging.Int("second_digits", ops[1].Digits()),
		logging.Int("max_digits", maxDigits),
	)
	if err := ctx.Err(); err != nil {
		return cli.Result{}, err
	}

	res := cli.Result{A: ops[0], B: ops[1]}
	_, mulSpan := a.tracer.Start(ctx, "karatmul.multiply",
		trace.WithAttributes(attribute.Int("karatmul.threshold", a.Multiplier.Threshold())))
	a.report = nil
	t0 := time.Now()
	res.Product, err = a.Multiplier.Product(ops[0], ops[1])
	elapsed := time.Since(t0)
	mulSpan.End()
	if err != nil {
		return cli.Result{}, apperrors.CalculationError{Cause: err}
	}
	if a.report != nil {
		res.Report = *a.report
	} else {
		res.Report = inferReport(a.Multiplier, ops, elapsed)
	}
	return res, nil
}

// inferReport builds a report for injected multipliers that emit none.
// Recursion counters stay zero.
func inferReport(m Multiplier, ops [2]bigint.BigInt, d time.Duration) bigint.ProductReport {
	r := bigint.ProductReport{Threshold: m.Threshold(), Duration: d}
	switch {
	case ops[0].IsZero() || ops[1].IsZero():
		r.Path = bigint.PathZero
	case ops[0].IsOne() || ops[1].IsOne():
		r.Path = bigint.PathIdentity
	case ops[0].IsMinusOne() || ops[1].IsMinusOne():
		r.Path = bigint.PathNegate
	default:
		r.Path = bigint.PathKaratsuba
		r.Limbs = max(ops[0].Len(), ops[1].Len())
	}
	return r
}

// operandError attributes a parse failure to the named operand.
func operandError(err error, name string) error {
	var fe apperrors.FormatError
	if errors.As(err, &fe) {
		fe.Operand = name
		return fe
	}
	return apperrors.WrapError(err, "%s operand", name)
}

// readOperands returns the two positional operands, or the first two
// whitespace-separated tokens of a.In. Anything after them is ignored.
func (a *Application) readOperands(maxDigits int) ([2]string, error) {
	var tokens [2]string
	if len(a.Config.Operands) == 2 {
		copy(tokens[:], a.Config.Operands)
		return tokens, nil
	}

	// Room for a sign and leading zeros on top of the digit limit.
	maxToken := 2*maxDigits + 64
	sc := bufio.NewScanner(a.In)
	sc.Buffer(make([]byte, 0, min(maxToken, 64*1024)), maxToken)
	sc.Split(bufio.ScanWords)
	for i := range tokens {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				if errors.Is(err, bufio.ErrTooLong) {
					return tokens, apperrors.WrapError(
						apperrors.LimitError{What: "input bytes", Limit: maxToken},
						"%s operand", operandNames[i])
				}
				return tokens, apperrors.WrapError(err, "reading %s operand", operandNames[i])
			}
			return tokens, apperrors.FormatError{Operand: operandNames[i], Reason: apperrors.ReasonEmpty}
		}
		tokens[i] = sc.Text()
	}
	return tokens, nil
}

// handleError logs err, prints a one-line message and maps it to an exit code.
func (a *Application) handleError(err error) int {
	code := apperrors.ExitCode(err)
	if code == apperrors.ExitErrorCanceled {
		fmt.Fprintf(a.ErrWriter, "%s\n", ui.Warning("Operation canceled"))
		return code
	}
	a.logger.Error("multiplication failed", err, logging.Int("exit_code", code))
	fmt.Fprintf(a.ErrWriter, "%s %v\n", ui.Error("Error:"), err)
	return code
}
