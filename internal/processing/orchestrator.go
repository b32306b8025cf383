// Package processing orchestrates a scan run: discover files, read
// bitrates, classify against the target range, predict CRF values, and
// optionally rename files to record the recommendation.
package processing

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/smartcrf/smartcrf/internal/annotate"
	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/discovery"
	"github.com/smartcrf/smartcrf/internal/ffprobe"
	"github.com/smartcrf/smartcrf/internal/predict"
	"github.com/smartcrf/smartcrf/internal/reporter"
)

// BitrateReader reads a file's bitrate in kbps. The production
// implementation shells out to ffprobe; tests substitute their own.
type BitrateReader interface {
	ReadBitrateKbps(ctx context.Context, path string) (int, error)
}

// StopSignal reports whether early termination has been requested. It is
// polled once per file, never mid-probe, so an in-flight invocation always
// completes before a stop takes effect.
type StopSignal func() bool

// ffprobeReader is the default BitrateReader, bounding each probe with the
// configured timeout.
type ffprobeReader struct {
	timeout time.Duration
}

func (r ffprobeReader) ReadBitrateKbps(ctx context.Context, path string) (int, error) {
	probeCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return ffprobe.ReadBitrateKbps(probeCtx, path)
}

// Orchestrator runs scans over a directory of video files. Files are
// processed strictly sequentially; the Summary counters are owned by the
// orchestrator and updated synchronously as each outcome is emitted.
type Orchestrator struct {
	cfg    *config.Config
	rep    reporter.Reporter
	reader BitrateReader
}

// New creates an orchestrator using the ffprobe bitrate reader.
func New(cfg *config.Config, rep reporter.Reporter) *Orchestrator {
	return NewWithReader(cfg, rep, ffprobeReader{
		timeout: time.Duration(cfg.ProbeTimeoutSecs) * time.Second,
	})
}

// NewWithReader creates an orchestrator with a custom bitrate reader.
func NewWithReader(cfg *config.Config, rep reporter.Reporter, reader BitrateReader) *Orchestrator {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	return &Orchestrator{cfg: cfg, rep: rep, reader: reader}
}

// ProcessDirectory scans the configured directory. Per-file failures are
// local and never abort the batch; only a failed directory listing does,
// reported once with no files processed. The returned Summary always
// reflects every outcome emitted before return.
func (o *Orchestrator) ProcessDirectory(ctx context.Context, stop StopSignal) (reporter.Summary, error) {
	var summary reporter.Summary
	start := time.Now()

	files, err := discovery.FindVideoFiles(o.cfg.InputDir)
	if err != nil {
		o.rep.Error(reporter.ReporterError{
			Title:   "Scan failed",
			Message: fmt.Sprintf("failed to list directory: %v", err),
			Context: o.cfg.InputDir,
		})
		return summary, err
	}

	o.rep.ScanStarted(reporter.ScanStartInfo{
		Directory:  o.cfg.InputDir,
		TotalFiles: len(files),
		MinKbps:    o.cfg.Target.Min,
		MaxKbps:    o.cfg.Target.Max,
		IdealKbps:  o.cfg.Target.Ideal,
		Rename:     o.cfg.Rename,
		DryRun:     o.cfg.DryRun,
		RoundMode:  o.cfg.Round.String(),
	})

	stopped := false
	for _, path := range files {
		if o.shouldStop(ctx, stop) {
			o.rep.Outcome(reporter.OutcomeRecord{
				Category: reporter.CategoryInfo,
				Detail:   "Stopped before processing remaining files.",
			})
			stopped = true
			break
		}

		o.processFile(ctx, path, &summary)
	}

	o.rep.ScanComplete(reporter.ScanSummary{
		Summary: summary,
		Elapsed: time.Since(start),
		Stopped: stopped,
	})

	return summary, nil
}

func (o *Orchestrator) shouldStop(ctx context.Context, stop StopSignal) bool {
	if ctx.Err() != nil {
		return true
	}
	return stop != nil && stop()
}

// processFile classifies one file and emits its outcome. Every exit path
// emits exactly one classification outcome; annotation failures add a
// separate FAILED record without changing the classification.
func (o *Orchestrator) processFile(ctx context.Context, path string, summary *reporter.Summary) {
	name := filepath.Base(path)

	kbps, err := o.reader.ReadBitrateKbps(ctx, path)
	if err != nil {
		o.emit(summary, reporter.OutcomeRecord{
			Category: reporter.CategoryError,
			Filename: name,
			Detail:   "Failed to read bitrate",
		})
		return
	}

	if o.cfg.Target.Contains(kbps) {
		newName := o.annotateFile(path, annotate.SkipSuffix, summary)
		o.emit(summary, reporter.OutcomeRecord{
			Category:    reporter.CategorySkip,
			Filename:    name,
			Detail:      fmt.Sprintf("Bitrate: %d kbps | Already in target range", kbps),
			BitrateKbps: kbps,
			NewName:     newName,
		})
		return
	}

	crf, ok := predict.CRF(kbps, o.cfg.Target.Ideal, o.cfg.Round)
	if !ok {
		o.emit(summary, reporter.OutcomeRecord{
			Category:    reporter.CategoryError,
			Filename:    name,
			Detail:      "Failed to predict CRF",
			BitrateKbps: kbps,
		})
		return
	}

	newName := o.annotateFile(path, annotate.ForCRF(crf, o.cfg.Round), summary)
	o.emit(summary, reporter.OutcomeRecord{
		Category:    reporter.CategoryProcessed,
		Filename:    name,
		Detail:      fmt.Sprintf("Bitrate: %d kbps | Predicted CRF: %s", kbps, annotate.FormatValue(crf, o.cfg.Round)),
		BitrateKbps: kbps,
		CRF:         &crf,
		NewName:     newName,
	})
}

// annotateFile applies the suffix when renaming is enabled. It returns the
// new basename on success and empty otherwise. Failures are reported as a
// FAILED record; a collision with the source file itself is only a warning.
func (o *Orchestrator) annotateFile(path, suffix string, summary *reporter.Summary) string {
	if !o.cfg.Rename {
		return ""
	}

	name := filepath.Base(path)

	if o.cfg.DryRun {
		o.rep.Outcome(reporter.OutcomeRecord{
			Category: reporter.CategoryInfo,
			Filename: name,
			Detail:   fmt.Sprintf("Would rename with suffix %q", suffix),
		})
		return ""
	}

	res, err := annotate.Apply(path, suffix)
	if err != nil {
		o.emit(summary, reporter.OutcomeRecord{
			Category: reporter.CategoryFailed,
			Filename: name,
			Detail:   fmt.Sprintf("Failed to rename with suffix %q: %v", suffix, err),
		})
		return ""
	}

	switch res.Outcome {
	case annotate.CollisionSkipped:
		o.rep.Warning(fmt.Sprintf("%s: target filename resolves to the source file, skipping rename", name))
		return ""
	case annotate.Unchanged:
		return ""
	default:
		return filepath.Base(res.NewPath)
	}
}

// emit forwards an outcome to the reporter and counts it.
func (o *Orchestrator) emit(summary *reporter.Summary, record reporter.OutcomeRecord) {
	summary.Add(record.Category)
	o.rep.Outcome(record)
}
