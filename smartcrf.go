// Package smartcrf provides a Go library for predicting CRF values from
// video bitrates.
//
// smartcrf reads the bitrate of each video in a directory with ffprobe,
// predicts the CRF value that would re-encode it into a target bitrate
// range, and annotates the filename with the prediction so a library can
// be triaged once and re-encoded later with any tool.
//
// Basic usage:
//
//	scanner, err := smartcrf.New(
//	    smartcrf.WithTargetRange(1500, 1600),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := scanner.ScanDirectory(ctx, "/videos", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Processed: %d, skipped: %d\n", summary.Processed, summary.Skip)
package smartcrf

import (
	"context"

	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/discovery"
	"github.com/smartcrf/smartcrf/internal/ffprobe"
	"github.com/smartcrf/smartcrf/internal/predict"
	"github.com/smartcrf/smartcrf/internal/processing"
	"github.com/smartcrf/smartcrf/internal/reporter"
	"github.com/smartcrf/smartcrf/internal/worker"
)

// Re-export the reporter surface so library consumers can stream outcomes
// without importing internal packages.
type (
	Reporter      = reporter.Reporter
	OutcomeRecord = reporter.OutcomeRecord
	Category      = reporter.Category
	Summary       = reporter.Summary
	ScanStartInfo = reporter.ScanStartInfo
	ScanSummary   = reporter.ScanSummary
)

const (
	CategoryProcessed = reporter.CategoryProcessed
	CategorySkip      = reporter.CategorySkip
	CategoryError     = reporter.CategoryError
	CategoryFailed    = reporter.CategoryFailed
)

// RoundMode selects how predicted CRF values are rounded.
type RoundMode = config.RoundMode

const (
	RoundInteger    = config.RoundInteger
	RoundFractional = config.RoundFractional
)

// Scanner is the main entry point for directory scans.
type Scanner struct {
	config *config.Config
}

// Option configures the scanner.
type Option func(*config.Config)

// New creates a new Scanner with the given options.
func New(opts ...Option) (*Scanner, error) {
	cfg := config.NewConfig(".")

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Scanner{config: cfg}, nil
}

// WithTargetRange sets the acceptable bitrate range in kbps. Files already
// inside the range are skipped. The prediction target defaults to the
// range midpoint.
func WithTargetRange(minKbps, maxKbps int) Option {
	return func(c *config.Config) {
		c.Target.Min = minKbps
		c.Target.Max = maxKbps
		c.Target.Ideal = c.Target.Midpoint()
	}
}

// WithIdealBitrate overrides the bitrate predictions aim for. It must lie
// inside the target range.
func WithIdealBitrate(kbps int) Option {
	return func(c *config.Config) {
		c.Target.Ideal = kbps
	}
}

// WithRenameDisabled classifies and reports without touching filenames.
func WithRenameDisabled() Option {
	return func(c *config.Config) {
		c.Rename = false
	}
}

// WithDryRun reports planned renames without performing them.
func WithDryRun() Option {
	return func(c *config.Config) {
		c.DryRun = true
	}
}

// WithRoundMode selects integer or one-decimal CRF predictions.
func WithRoundMode(mode RoundMode) Option {
	return func(c *config.Config) {
		c.Round = mode
	}
}

// WithProbeTimeout bounds each ffprobe invocation in seconds.
func WithProbeTimeout(secs int) Option {
	return func(c *config.Config) {
		c.ProbeTimeoutSecs = secs
	}
}

// ScanDirectory scans dir sequentially, streaming outcomes to rep. A nil
// reporter discards updates. The returned summary counts every emitted
// outcome; the error is non-nil only when the directory cannot be listed.
func (s *Scanner) ScanDirectory(ctx context.Context, dir string, rep Reporter) (Summary, error) {
	cfg := *s.config
	cfg.InputDir = dir

	return processing.New(&cfg, rep).ProcessDirectory(ctx, nil)
}

// ScanDirectoryAsync starts a background scan of dir and returns a Task
// streaming events. Call Task.Stop to finish after the current file.
func (s *Scanner) ScanDirectoryAsync(ctx context.Context, dir string) *worker.Task {
	cfg := *s.config
	cfg.InputDir = dir

	return worker.Start(ctx, &cfg)
}

// PredictCRF computes the CRF estimated to re-encode a source at
// sourceKbps down to targetKbps. The second return is false when either
// bitrate is non-positive.
func PredictCRF(sourceKbps, targetKbps int, mode RoundMode) (float64, bool) {
	return predict.CRF(sourceKbps, targetKbps, mode)
}

// ReadBitrateKbps reads the bitrate of a single video file with ffprobe.
func ReadBitrateKbps(ctx context.Context, path string) (int, error) {
	return ffprobe.ReadBitrateKbps(ctx, path)
}

// FindVideos lists video files in a directory, sorted by name.
func FindVideos(dir string) ([]string, error) {
	return discovery.FindVideoFiles(dir)
}

// FfprobeAvailable reports whether ffprobe is installed and on PATH.
func FfprobeAvailable() bool {
	return ffprobe.Available()
}
