package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	ScanStarted(info ScanStartInfo)
	Outcome(record OutcomeRecord)
	Warning(message string)
	Error(err ReporterError)
	ScanComplete(summary ScanSummary)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) ScanStarted(ScanStartInfo) {}
func (NullReporter) Outcome(OutcomeRecord)     {}
func (NullReporter) Warning(string)            {}
func (NullReporter) Error(ReporterError)       {}
func (NullReporter) ScanComplete(ScanSummary)  {}
