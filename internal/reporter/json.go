package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs one NDJSON event per line for machine consumers.
type JSONReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stdout}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) ScanStarted(info ScanStartInfo) {
	r.write(map[string]interface{}{
		"type":        "scan_started",
		"directory":   info.Directory,
		"total_files": info.TotalFiles,
		"min_kbps":    info.MinKbps,
		"max_kbps":    info.MaxKbps,
		"ideal_kbps":  info.IdealKbps,
		"rename":      info.Rename,
		"dry_run":     info.DryRun,
		"round_mode":  info.RoundMode,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) Outcome(record OutcomeRecord) {
	event := map[string]interface{}{
		"type":      "outcome",
		"category":  string(record.Category),
		"filename":  record.Filename,
		"detail":    record.Detail,
		"timestamp": r.timestamp(),
	}
	if record.BitrateKbps > 0 {
		event["bitrate_kbps"] = record.BitrateKbps
	}
	if record.CRF != nil {
		event["predicted_crf"] = *record.CRF
	}
	if record.NewName != "" {
		event["new_name"] = record.NewName
	}
	r.write(event)
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) ScanComplete(summary ScanSummary) {
	r.write(map[string]interface{}{
		"type":             "scan_complete",
		"processed":        summary.Summary.Processed,
		"skip":             summary.Summary.Skip,
		"error":            summary.Summary.Error,
		"failed":           summary.Summary.Failed,
		"stopped":          summary.Stopped,
		"duration_seconds": int64(summary.Elapsed.Seconds()),
		"timestamp":        r.timestamp(),
	})
}
