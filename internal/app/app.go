// Package app wires configuration, the multiplier, metrics, tracing and
// output into the karatmul command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/karatmul/internal/bigint"
	"github.com/agbru/karatmul/internal/calibration"
	"github.com/agbru/karatmul/internal/cli"
	"github.com/agbru/karatmul/internal/config"
	"github.com/agbru/karatmul/internal/logging"
	"github.com/agbru/karatmul/internal/metrics"
	"github.com/agbru/karatmul/internal/ui"
)

const tracerName = "github.com/agbru/karatmul/internal/app"

// Application represents the karatmul application instance.
type Application struct {
	Config     config.AppConfig
	Multiplier Multiplier
	ErrWriter  io.Writer
	// In supplies operands when none are given on the command line.
	In io.Reader

	logger   logging.Logger
	tracer   trace.Tracer
	recorder *metrics.Recorder
	// report is the last report seen from the default multiplier.
	report *bigint.ProductReport
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithMultiplier replaces the default *bigint.Multiplier. Metrics are only
// recorded by the default multiplier.
func WithMultiplier(m Multiplier) AppOption {
	return func(a *Application) { a.Multiplier = m }
}

// WithInput sets the operand reader used when no positional operands are given.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger replaces the console logger on ErrWriter.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) AppOption {
	return func(a *Application) { a.tracer = tp.Tracer(tracerName) }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "karatmul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}

	app := &Application{Config: cfg, ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = logging.NewConsoleLogger(errWriter, "karatmul", cfg.NoColor)
	}
	if app.tracer == nil {
		app.tracer = otel.Tracer(tracerName)
	}
	app.recorder = metrics.NewRecorder()
	if app.Multiplier == nil {
		app.Multiplier = bigint.NewMultiplier(
			bigint.WithThreshold(cfg.Threshold),
			bigint.WithObserver(observers{
				app.recorder,
				debugObserver{app.logger},
				bigint.ObserverFunc(func(r bigint.ProductReport) { app.report = &r }),
			}),
		)
	}
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Calibrate {
		return a.runCalibration(ctx)
	}
	return a.runCalculate(ctx, out)
}

// runCalibration benchmarks crossover candidates; its report goes to
// ErrWriter so that stdout stays reserved for products.
func (a *Application) runCalibration(ctx context.Context) int {
	progress := cli.NewProgressSpinner(a.ErrWriter)
	return calibration.RunCalibration(ctx, a.ErrWriter, calibration.Options{
		ProfilePath: a.Config.CalibrationProfile,
		Reporter:    progress,
	})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// observers fans a report out to several observers.
type observers []bigint.Observer

func (o observers) ObserveProduct(r bigint.ProductReport) {
	for _, obs := range o {
		obs.ObserveProduct(r)
	}
}

// debugObserver logs every report at debug level.
type debugObserver struct {
	logger logging.Logger
}

func (d debugObserver) ObserveProduct(r bigint.ProductReport) {
	d.logger.Debug("product computed",
		logging.String("path", r.Path.String()),
		logging.Int("limbs", r.Limbs),
		logging.Int("threshold", r.Threshold),
		logging.Int("karatsuba_splits", r.KaratsubaCalls),
		logging.Int("schoolbook_calls", r.SchoolbookCalls),
		logging.Int("depth", r.Depth),
		logging.Duration("duration", r.Duration),
	)
}
