package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) ScanStarted(info ScanStartInfo) {
	for _, r := range c.reporters {
		r.ScanStarted(info)
	}
}

func (c *CompositeReporter) Outcome(record OutcomeRecord) {
	for _, r := range c.reporters {
		r.Outcome(record)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) ScanComplete(summary ScanSummary) {
	for _, r := range c.reporters {
		r.ScanComplete(summary)
	}
}
