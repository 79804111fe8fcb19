package calibration

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/karatmul/internal/errors"
	"github.com/agbru/karatmul/internal/ui"
)

type recordingReporter struct {
	labels []string
	totals []int
}

func (r *recordingReporter) Update(done, total int, label string) {
	r.labels = append(r.labels, label)
	r.totals = append(r.totals, total)
}

func TestRun(t *testing.T) {
	t.Parallel()
	rep := &recordingReporter{}
	summary, err := Run(context.Background(), Options{
		Digits:     600,
		Rounds:     1,
		Thresholds: []int{2, 4, 8},
		Reporter:   rep,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(summary.Results))
	}
	found := false
	for _, r := range summary.Results {
		if r.Err != nil {
			t.Errorf("threshold %d failed: %v", r.Threshold, r.Err)
		}
		if r.Threshold == summary.Best {
			found = true
		}
	}
	if !found {
		t.Errorf("Best %d is not a candidate", summary.Best)
	}
	if want := []string{"threshold 2", "threshold 4", "threshold 8"}; strings.Join(rep.labels, ",") != strings.Join(want, ",") {
		t.Errorf("reporter labels = %v, want %v", rep.labels, want)
	}
	for _, total := range rep.totals {
		if total != 3 {
			t.Errorf("reporter total = %d, want 3", total)
		}
	}
}

func TestRunSkipsRejectedCandidates(t *testing.T) {
	t.Parallel()
	// Threshold 1 allows 2048 limbs; 13000 digits pad to 4096.
	summary, err := Run(context.Background(), Options{Digits: 13000, Rounds: 1, Thresholds: []int{1, 8}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var limErr apperrors.LimitError
	if !errors.As(summary.Results[0].Err, &limErr) {
		t.Errorf("threshold 1 should fail with LimitError, got %v", summary.Results[0].Err)
	}
	if summary.Best != 8 {
		t.Errorf("Best = %d, want 8", summary.Best)
	}
}

func TestRunAllRejected(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), Options{Digits: 13000, Rounds: 1, Thresholds: []int{1}})
	var calcErr apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Errorf("expected CalculationError, got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{Digits: 600, Thresholds: []int{4}}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunCalibration(t *testing.T) {
	saved := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(saved)
	ui.SetCurrentTheme(ui.NoColorTheme)

	path := filepath.Join(t.TempDir(), "profile.json")
	var out bytes.Buffer
	code := RunCalibration(context.Background(), &out, Options{Digits: 600, Rounds: 1, Thresholds: []int{4, 8}, ProfilePath: path})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	for _, want := range []string{"Calibration Summary", "4 limbs", "8 limbs", "(Optimal)", "profile saved to " + path} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	p, loaded := LoadOrCreateProfile(path)
	if !loaded {
		t.Fatal("profile not saved")
	}
	if p.OptimalThreshold != 4 && p.OptimalThreshold != 8 {
		t.Errorf("OptimalThreshold = %d", p.OptimalThreshold)
	}
	if p.CalibrationDigits != 600 {
		t.Errorf("CalibrationDigits = %d, want 600", p.CalibrationDigits)
	}
}

func TestRunCalibrationCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	code := RunCalibration(ctx, &out, Options{Digits: 600, Thresholds: []int{4}, ProfilePath: filepath.Join(t.TempDir(), "p.json")})
	if code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRandomDecimal(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	s := randomDecimal(rng, 50)
	if len(s) != 50 || s[0] == '0' {
		t.Errorf("randomDecimal = %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			t.Fatalf("non-digit %q in %q", s[i], s)
		}
	}
}
