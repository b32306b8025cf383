// Package worker runs a directory scan in the background so an interactive
// frontend can stream outcomes and request a stop without blocking.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/processing"
	"github.com/smartcrf/smartcrf/internal/reporter"
)

// Event is one update from a running scan. Exactly one field is set.
type Event struct {
	Started  *reporter.ScanStartInfo
	Outcome  *reporter.OutcomeRecord
	Warning  string
	Err      *reporter.ReporterError
	Complete *reporter.ScanSummary
}

// Task owns one background scan. Create it with Start and consume Events
// until the channel closes; the final Complete event carries the summary.
type Task struct {
	events  chan Event
	stopped atomic.Bool

	mu      sync.Mutex
	summary reporter.Summary
	err     error
	done    bool
}

// channelReporter adapts the event channel to the reporter interface.
// The orchestrator is single-threaded, so sends never race.
type channelReporter struct {
	events chan<- Event
}

func (c channelReporter) ScanStarted(info reporter.ScanStartInfo) {
	c.events <- Event{Started: &info}
}

func (c channelReporter) Outcome(rec reporter.OutcomeRecord) {
	c.events <- Event{Outcome: &rec}
}

func (c channelReporter) Warning(msg string) {
	c.events <- Event{Warning: msg}
}

func (c channelReporter) Error(err reporter.ReporterError) {
	c.events <- Event{Err: &err}
}

func (c channelReporter) ScanComplete(s reporter.ScanSummary) {
	c.events <- Event{Complete: &s}
}

// Start launches a scan of cfg.InputDir in its own goroutine.
func Start(ctx context.Context, cfg *config.Config) *Task {
	t := &Task{events: make(chan Event, 16)}

	o := processing.New(cfg, channelReporter{events: t.events})

	go func() {
		defer close(t.events)
		summary, err := o.ProcessDirectory(ctx, t.stopped.Load)

		t.mu.Lock()
		t.summary = summary
		t.err = err
		t.done = true
		t.mu.Unlock()
	}()

	return t
}

// Events returns the stream of updates. It closes when the scan finishes.
func (t *Task) Events() <-chan Event {
	return t.events
}

// Stop requests the scan to finish after the file currently being processed.
// It is safe to call from any goroutine and more than once.
func (t *Task) Stop() {
	t.stopped.Store(true)
}

// Wait drains any remaining events and returns the final summary. The
// returned error is non-nil only when the scan failed before processing.
func (t *Task) Wait() (reporter.Summary, error) {
	for range t.events {
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary, t.err
}
