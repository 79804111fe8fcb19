package config

import (
	"runtime"

	"github.com/agbru/karatmul/internal/bigint"
)

// Threshold resolution chain (highest priority first):
//   1. --threshold
//   2. KARATMUL_THRESHOLD
//   3. cached calibration profile (~/.karatmul_calibration.json)
//   4. hardware estimate (this file)

// ApplyAdaptiveThresholds fills a zero Threshold with a hardware estimate.
// A non-zero value is left untouched.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalThreshold()
	}
	return cfg
}

// EstimateOptimalThreshold returns a crossover guess without benchmarking.
// On 32-bit platforms int64 limb products are emulated, which makes the
// schoolbook base case relatively more expensive.
func EstimateOptimalThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 32 || runtime.GOARCH == "wasm" {
		return bigint.DefaultThreshold / 2
	}
	return bigint.DefaultThreshold
}
