package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agbru/karatmul/internal/bigint"
	apperrors "github.com/agbru/karatmul/internal/errors"
	"github.com/agbru/karatmul/internal/ui"
)

// Reporter receives progress after each benchmarked candidate. A Reporter
// that also has a Stop method is stopped before RunCalibration prints.
type Reporter interface {
	Update(done, total int, label string)
}

// Options controls a calibration run. Zero fields take defaults.
type Options struct {
	// Digits is the decimal length of both benchmark operands.
	Digits int
	// Rounds is how many products are timed per candidate; the fastest counts.
	Rounds int
	// Thresholds are the candidates, GenerateThresholds() by default.
	Thresholds []int
	// ProfilePath is where RunCalibration saves the profile.
	ProfilePath string
	// Seed makes the benchmark operands reproducible.
	Seed uint64
	Reporter Reporter
}

func (o Options) withDefaults() Options {
	if o.Digits <= 0 {
		o.Digits = DefaultCalibrationDigits
	}
	if o.Rounds <= 0 {
		o.Rounds = 3
	}
	if len(o.Thresholds) == 0 {
		o.Thresholds = GenerateThresholds()
	}
	if o.ProfilePath == "" {
		o.ProfilePath = GetDefaultProfilePath()
	}
	if o.Seed == 0 {
		o.Seed = 0x6b617261
	}
	return o
}

// Result is the timing of one candidate threshold.
type Result struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// Summary is the outcome of Run.
type Summary struct {
	Results []Result
	Best    int
	Elapsed time.Duration
}

// Run times Product at every candidate threshold on two random operands and
// picks the fastest. The context is checked between products.
func Run(ctx context.Context, opts Options) (Summary, error) {
	opts = opts.withDefaults()
	start := time.Now()

	rng := rand.New(rand.NewPCG(opts.Seed, uint64(opts.Digits)))
	a, err := bigint.Parse(randomDecimal(rng, opts.Digits))
	if err != nil {
		return Summary{}, err
	}
	b, err := bigint.Parse(randomDecimal(rng, opts.Digits))
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Results: make([]Result, 0, len(opts.Thresholds))}
	bestIdx := -1
	for i, th := range opts.Thresholds {
		res := Result{Threshold: th}
		m := bigint.NewMultiplier(bigint.WithThreshold(th))
		for r := 0; r < opts.Rounds; r++ {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			t0 := time.Now()
			if _, err := m.Product(a, b); err != nil {
				res.Err = err
				break
			}
			if d := time.Since(t0); r == 0 || d < res.Duration {
				res.Duration = d
			}
		}
		summary.Results = append(summary.Results, res)
		if res.Err == nil && (bestIdx < 0 || res.Duration < summary.Results[bestIdx].Duration) {
			bestIdx = i
		}
		if opts.Reporter != nil {
			opts.Reporter.Update(i+1, len(opts.Thresholds), fmt.Sprintf("threshold %d", th))
		}
	}
	summary.Elapsed = time.Since(start)

	if bestIdx < 0 {
		return summary, apperrors.CalculationError{Cause: fmt.Errorf("no candidate threshold completed on %d-digit operands", opts.Digits)}
	}
	summary.Best = summary.Results[bestIdx].Threshold
	return summary, nil
}

// RunCalibration runs the benchmark, prints the summary table to out, saves
// the profile and returns a process exit code.
func RunCalibration(ctx context.Context, out io.Writer, opts Options) int {
	opts = opts.withDefaults()
	if !fitsAll(opts.Digits, opts.Thresholds) {
		fmt.Fprintf(out, "%s some candidates reject %d-digit operands\n", ui.Warning("Warning:"), opts.Digits)
	}
	fmt.Fprintf(out, "Calibrating Karatsuba crossover on %s-digit operands (%d candidates, best of %d)...\n",
		ui.Bold(fmt.Sprint(opts.Digits)), len(opts.Thresholds), opts.Rounds)

	summary, err := Run(ctx, opts)
	if s, ok := opts.Reporter.(interface{ Stop() }); ok {
		s.Stop()
	}
	if err != nil {
		if apperrors.IsContextError(err) {
			fmt.Fprintf(out, "%s calibration canceled\n", ui.Error("✗"))
			return apperrors.ExitErrorCanceled
		}
		fmt.Fprintf(out, "%s %v\n", ui.Error("Calibration failed:"), err)
		return apperrors.ExitErrorGeneric
	}
	printCalibrationResults(out, summary.Results, summary.Best)

	profile := NewProfile()
	profile.OptimalThreshold = summary.Best
	profile.CalibrationDigits = opts.Digits
	profile.CalibrationTime = summary.Elapsed.Round(time.Millisecond).String()
	if err := profile.SaveProfile(opts.ProfilePath); err != nil {
		fmt.Fprintf(out, "%s %v\n", ui.Error("Could not save profile:"), err)
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(out, "\n%s threshold %s limbs, profile saved to %s\n",
		ui.Success("✓ Optimal"), ui.Bold(fmt.Sprint(summary.Best)), opts.ProfilePath)
	return apperrors.ExitSuccess
}

// randomDecimal returns n random digits with a non-zero leading digit.
func randomDecimal(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + rng.IntN(10)))
	}
	return sb.String()
}
