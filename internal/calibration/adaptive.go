package calibration

import (
	"github.com/agbru/karatmul/internal/bigint"
	"github.com/agbru/karatmul/internal/config"
)

// DefaultCalibrationDigits is the operand size benchmarked by default. It
// pads to 2048 limbs, below the overflow-safe length of every candidate.
const DefaultCalibrationDigits = 12000

// GenerateThresholds returns the crossover candidates to benchmark. The
// Karatsuba leaf size is the largest power of two not above the threshold,
// so only powers of two are distinct.
func GenerateThresholds() []int {
	thresholds := []int{4, 8, 16, 32, 64}
	if 32<<(^uint(0)>>63) == 64 {
		thresholds = append(thresholds, 128)
	}
	return thresholds
}

// EstimateOptimalThreshold delegates to config.EstimateOptimalThreshold.
func EstimateOptimalThreshold() int { return config.EstimateOptimalThreshold() }

// LoadCachedCalibration fills a zero cfg.Threshold from the profile at path
// (the default location when empty). It reports whether a threshold was
// taken from the profile.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if cfg.Threshold != 0 {
		return cfg, false
	}
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, loaded := LoadOrCreateProfile(path)
	if !loaded || p.OptimalThreshold < 1 || p.OptimalThreshold > 1<<20 {
		return cfg, false
	}
	cfg.Threshold = p.OptimalThreshold
	return cfg, true
}

// fitsAll reports whether an operand of the given size is accepted under
// every candidate threshold.
func fitsAll(digits int, thresholds []int) bool {
	for _, th := range thresholds {
		if digits > bigint.NewMultiplier(bigint.WithThreshold(th)).MaxDigits() {
			return false
		}
	}
	return true
}
