package reporter

import "fmt"

// SinkReporter adapts the Reporter interface to a plain line callback.
// Every event is rendered as a tag-prefixed string, so a subscriber (a log
// pane, a flat file, a test) can aggregate or filter by category using
// ParseTag alone.
type SinkReporter struct {
	sink func(string)
}

// NewSinkReporter wraps a line callback. A nil sink discards everything.
func NewSinkReporter(sink func(string)) *SinkReporter {
	return &SinkReporter{sink: sink}
}

func (r *SinkReporter) emit(line string) {
	if r.sink != nil {
		r.sink(line)
	}
}

func (r *SinkReporter) ScanStarted(info ScanStartInfo) {
	r.emit(fmt.Sprintf("%s Scanning folder: %s", CategoryInfo.Tag(), info.Directory))
}

func (r *SinkReporter) Outcome(record OutcomeRecord) {
	r.emit(record.Line())
}

func (r *SinkReporter) Warning(message string) {
	r.emit(fmt.Sprintf("%s %s", CategoryWarn.Tag(), message))
}

func (r *SinkReporter) Error(err ReporterError) {
	line := fmt.Sprintf("%s %s: %s", CategoryError.Tag(), err.Title, err.Message)
	if err.Context != "" {
		line += " (" + err.Context + ")"
	}
	r.emit(line)
}

func (r *SinkReporter) ScanComplete(summary ScanSummary) {
	r.emit(fmt.Sprintf("%s Done: Processed %d | Skip %d | Error %d | Failed %d",
		CategoryInfo.Tag(),
		summary.Summary.Processed, summary.Summary.Skip,
		summary.Summary.Error, summary.Summary.Failed))
}
