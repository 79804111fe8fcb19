// Package calibration benchmarks Karatsuba crossover thresholds on the
// current machine and persists the winner in a JSON profile.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/agbru/karatmul/internal/sysmon"
)

const (
	// DefaultProfileFileName is the profile file created in the home directory.
	DefaultProfileFileName = ".karatmul_calibration.json"
	// CurrentProfileVersion is bumped whenever the profile layout or the
	// meaning of its thresholds changes.
	CurrentProfileVersion = 1
)

// CalibrationProfile records the hardware a calibration ran on and its result.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU      int      `json:"num_cpu"`
	GOARCH      string   `json:"goarch"`
	GOOS        string   `json:"goos"`
	GoVersion   string   `json:"go_version"`
	WordSize    int      `json:"word_size"`
	CPUModel    string   `json:"cpu_model,omitempty"`
	CPUFeatures []string `json:"cpu_features,omitempty"`

	OptimalThreshold  int    `json:"optimal_threshold"`
	CalibrationDigits int    `json:"calibration_digits"`
	CalibrationTime   string `json:"calibration_time"`
}

// NewProfile describes the current machine, with no threshold yet.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CPUModel:       sysmon.CPUModel(),
		CPUFeatures:    cpuFeatures(),
	}
}

// cpuFeatures lists the instruction set extensions that affect 64-bit
// multiply throughput.
func cpuFeatures() []string {
	var feats []string
	add := func(name string, ok bool) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("avx2", cpu.X86.HasAVX2)
		add("bmi2", cpu.X86.HasBMI2)
		add("adx", cpu.X86.HasADX)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
	}
	return feats
}

// SaveProfile writes p as indented JSON, creating parent directories.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path. When it is missing,
// unreadable or was produced on different hardware, a fresh profile is
// returned with loaded=false.
func LoadOrCreateProfile(path string) (profile *CalibrationProfile, loaded bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// IsValid reports whether p was produced by this profile version on
// hardware matching the current machine.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether p is older than maxAge. A nil profile is stale.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String summarizes p on one line.
func (p *CalibrationProfile) String() string {
	feats := "none"
	if len(p.CPUFeatures) > 0 {
		feats = strings.Join(p.CPUFeatures, ",")
	}
	return fmt.Sprintf("calibration profile v%d: threshold=%d limbs, %d-digit operands, %s/%s, %d CPUs, features=%s, calibrated %s",
		p.ProfileVersion, p.OptimalThreshold, p.CalibrationDigits, p.GOOS, p.GOARCH, p.NumCPU, feats,
		p.CalibratedAt.Format(time.RFC3339))
}

// GetDefaultProfilePath returns ~/.karatmul_calibration.json, or the bare
// file name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
