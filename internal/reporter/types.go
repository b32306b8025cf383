// Package reporter provides progress reporting interfaces and implementations.
package reporter

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a per-file outcome. The category is the single source
// of truth for aggregation: consumers never need orchestrator internals to
// count results, only the category (or its tag form on a rendered line).
type Category string

const (
	// CategoryProcessed marks a file that received a CRF prediction.
	CategoryProcessed Category = "PROCESSED"
	// CategorySkip marks a file whose bitrate is already in the target range.
	CategorySkip Category = "SKIP"
	// CategoryError marks a file whose bitrate or prediction was unavailable.
	CategoryError Category = "ERROR"
	// CategoryFailed marks a file whose annotation rename was denied.
	CategoryFailed Category = "FAILED"
	// CategoryInfo marks run-level notices that are not per-file outcomes.
	CategoryInfo Category = "INFO"
	// CategoryWarn marks non-fatal irregularities.
	CategoryWarn Category = "WARN"
)

// Tag returns the bracketed form used to prefix rendered lines.
func (c Category) Tag() string {
	return "[" + string(c) + "]"
}

// ParseTag recovers the category from a tag-prefixed line.
func ParseTag(line string) (Category, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return "", false
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", false
	}

	switch c := Category(line[1:end]); c {
	case CategoryProcessed, CategorySkip, CategoryError, CategoryFailed, CategoryInfo, CategoryWarn:
		return c, true
	default:
		return "", false
	}
}

// OutcomeRecord is the result of handling a single file.
type OutcomeRecord struct {
	Category    Category
	Filename    string
	Detail      string
	BitrateKbps int      // 0 when the bitrate could not be read
	CRF         *float64 // set only for CategoryProcessed
	NewName     string   // set when the file was renamed
}

// Line renders the record as a tag-prefixed, human-readable string.
func (r OutcomeRecord) Line() string {
	if r.Filename == "" {
		return fmt.Sprintf("%s %s", r.Category.Tag(), r.Detail)
	}
	return fmt.Sprintf("%s %s | %s", r.Category.Tag(), r.Filename, r.Detail)
}

// Summary aggregates outcome counts for one run.
type Summary struct {
	Processed int
	Skip      int
	Error     int
	Failed    int
}

// Add counts a category into the summary. Info and warn lines are not
// per-file outcomes and are ignored.
func (s *Summary) Add(c Category) {
	switch c {
	case CategoryProcessed:
		s.Processed++
	case CategorySkip:
		s.Skip++
	case CategoryError:
		s.Error++
	case CategoryFailed:
		s.Failed++
	}
}

// Total returns the number of counted outcomes.
func (s Summary) Total() int {
	return s.Processed + s.Skip + s.Error + s.Failed
}

// ScanStartInfo describes a run before the first file is handled.
type ScanStartInfo struct {
	Directory  string
	TotalFiles int
	MinKbps    int
	MaxKbps    int
	IdealKbps  int
	Rename     bool
	DryRun     bool
	RoundMode  string
}

// ScanSummary describes a completed (or stopped) run.
type ScanSummary struct {
	Summary Summary
	Elapsed time.Duration
	Stopped bool
}

// ReporterError contains error information for run-level failures.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}
