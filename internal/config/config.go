package config

import (
	"fmt"
	"strings"
)

// Default constants
const (
	// DefaultTargetMin is the lower bound of the target bitrate range in kbps.
	DefaultTargetMin = 1500

	// DefaultTargetMax is the upper bound of the target bitrate range in kbps.
	DefaultTargetMax = 1600

	// DefaultProbeTimeoutSecs bounds a single ffprobe invocation.
	DefaultProbeTimeoutSecs = 15

	// BaseCRF is the CRF predicted when source and target bitrates are equal.
	BaseCRF = 20

	// MinCRF is the lowest valid CRF value.
	MinCRF = 0

	// MaxCRF is the highest valid CRF value.
	MaxCRF = 51
)

// RoundMode selects how predicted CRF values are rounded.
type RoundMode string

const (
	// RoundInteger rounds the prediction to the nearest integer.
	RoundInteger RoundMode = "integer"

	// RoundFractional rounds the prediction to one decimal place.
	RoundFractional RoundMode = "fractional"
)

// ParseRoundMode converts a mode string to a RoundMode value.
// Valid values are "integer" and "fractional" (case-insensitive).
func ParseRoundMode(s string) (RoundMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int":
		return RoundInteger, nil
	case "fractional", "frac":
		return RoundFractional, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: integer, fractional)", ErrInvalidRoundMode, s)
	}
}

// String returns the mode name.
func (m RoundMode) String() string {
	return string(m)
}

// TargetRange is the acceptable bitrate window in kbps. Files whose bitrate
// falls inside [Min, Max] need no CRF change; Ideal is the prediction target
// for everything else.
type TargetRange struct {
	Min   int
	Max   int
	Ideal int
}

// Midpoint returns the integer midpoint of the range.
func (r TargetRange) Midpoint() int {
	return (r.Min + r.Max) / 2
}

// Contains reports whether kbps falls inside the range, bounds inclusive.
func (r TargetRange) Contains(kbps int) bool {
	return kbps >= r.Min && kbps <= r.Max
}

// Validate checks that the range is usable.
func (r TargetRange) Validate() error {
	if r.Min <= 0 || r.Max <= 0 {
		return fmt.Errorf("%w: min=%d max=%d", ErrNonPositiveRange, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Ideal < r.Min || r.Ideal > r.Max {
		return fmt.Errorf("%w: ideal=%d range=[%d, %d]", ErrIdealOutOfRange, r.Ideal, r.Min, r.Max)
	}
	return nil
}

// Config holds all settings for a scan run.
type Config struct {
	// InputDir is the directory to scan for video files.
	InputDir string

	// LogDir is where run log files are written.
	LogDir string

	// Target is the acceptable bitrate window.
	Target TargetRange

	// Rename controls whether files are annotated on disk.
	Rename bool

	// DryRun reports planned renames without touching the filesystem.
	DryRun bool

	// Round selects integer or fractional CRF output.
	Round RoundMode

	// ProbeTimeoutSecs bounds each ffprobe invocation.
	ProbeTimeoutSecs int

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a configuration with default values.
// The ideal bitrate defaults to the range midpoint.
func NewConfig(inputDir string) *Config {
	target := TargetRange{Min: DefaultTargetMin, Max: DefaultTargetMax}
	target.Ideal = target.Midpoint()

	return &Config{
		InputDir:         inputDir,
		Target:           target,
		Rename:           true,
		Round:            RoundInteger,
		ProbeTimeoutSecs: DefaultProbeTimeoutSecs,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	if err := c.Target.Validate(); err != nil {
		return err
	}
	if c.Round != RoundInteger && c.Round != RoundFractional {
		return fmt.Errorf("%w: %q", ErrInvalidRoundMode, c.Round)
	}
	if c.ProbeTimeoutSecs <= 0 {
		c.ProbeTimeoutSecs = DefaultProbeTimeoutSecs
	}
	return nil
}
