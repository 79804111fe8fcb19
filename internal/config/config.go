// Package config defines the karatmul configuration, its command-line
// flags and the environment variables that override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/karatmul/internal/errors"
)

// EnvPrefix is prepended to every environment variable name read by
// applyEnvOverrides.
const EnvPrefix = "KARATMUL_"

// AppConfig aggregates the application's runtime settings.
type AppConfig struct {
	// Threshold is the Karatsuba crossover in limbs. Zero means "resolve from
	// the calibration profile or the hardware estimate".
	Threshold int
	// MaxDigits caps the decimal digits accepted per operand. Zero means the
	// overflow-safe limit derived from the threshold.
	MaxDigits int
	// OutputFile, when set, receives a copy of the result.
	OutputFile string
	// Quiet suppresses everything except the product itself.
	Quiet bool
	// Details renders a statistics panel on the error stream.
	Details bool
	// Verbose enables debug-level logging.
	Verbose bool
	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string
	// Calibrate runs the crossover benchmark instead of a multiplication.
	Calibrate bool
	// CalibrationProfile overrides the profile location.
	CalibrationProfile string
	// NoColor disables ANSI colors.
	NoColor bool
	// Operands holds the positional arguments: either none (read stdin) or two.
	Operands []string
}

// ParseConfig parses args into an AppConfig. Flags win over KARATMUL_
// environment variables, which win over defaults. flag.ErrHelp is returned
// unchanged so callers can exit cleanly on --help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [a b]\n\n", programName)
		fmt.Fprintln(errWriter, "Multiplies two signed decimal integers. Without positional")
		fmt.Fprintln(errWriter, "operands, two whitespace-separated tokens are read from stdin.")
		fmt.Fprintln(errWriter, "Use -- before negative operands.")
		fmt.Fprintln(errWriter)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.IntVar(&config.Threshold, "threshold", 0, "Karatsuba crossover in limbs (0 = auto).")
	fs.IntVar(&config.MaxDigits, "max-digits", 0, "Maximum decimal digits per operand (0 = overflow-safe limit).")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the product to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the product.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Details, "details", false, "Show a statistics panel on stderr.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark crossover thresholds and save a profile.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Calibration profile path.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	// --version is handled before parsing; it is registered so that it
	// appears in the usage text.
	fs.Bool("version", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	config.Operands = fs.Args()

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Threshold < 0 {
		return apperrors.NewConfigError("threshold must be non-negative, got %d", c.Threshold)
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("max-digits must be non-negative, got %d", c.MaxDigits)
	}
	if c.Quiet && c.Details {
		return apperrors.NewConfigError("--quiet and --details are mutually exclusive")
	}
	if n := len(c.Operands); n != 0 && n != 2 {
		return apperrors.NewConfigError("expected zero or two operands, got %d", n)
	}
	if c.Calibrate && len(c.Operands) > 0 {
		return apperrors.NewConfigError("--calibrate takes no operands")
	}
	return nil
}
