package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/reporter"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTaskEmptyDirectory(t *testing.T) {
	cfg := config.NewConfig(t.TempDir())

	task := Start(context.Background(), cfg)

	var started, complete bool
	for ev := range task.Events() {
		switch {
		case ev.Started != nil:
			started = true
			if ev.Started.TotalFiles != 0 {
				t.Errorf("TotalFiles = %d, want 0", ev.Started.TotalFiles)
			}
		case ev.Complete != nil:
			complete = true
		}
	}
	if !started || !complete {
		t.Errorf("started = %v, complete = %v, want both", started, complete)
	}

	summary, err := task.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if summary.Total() != 0 {
		t.Errorf("summary.Total() = %d, want 0", summary.Total())
	}
}

func TestTaskStreamsOutcomes(t *testing.T) {
	dir := t.TempDir()
	// Unreadable without ffprobe mocking, so each file yields an Error outcome.
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "b.mkv"))

	cfg := config.NewConfig(dir)
	cfg.ProbeTimeoutSecs = 1

	task := Start(context.Background(), cfg)

	outcomes := 0
	for ev := range task.Events() {
		if ev.Outcome != nil && ev.Outcome.Category == reporter.CategoryError {
			outcomes++
		}
	}
	if outcomes != 2 {
		t.Errorf("got %d error outcomes, want 2", outcomes)
	}

	summary, err := task.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if summary.Error != 2 {
		t.Errorf("summary.Error = %d, want 2", summary.Error)
	}
}

func TestTaskFailsOnMissingDirectory(t *testing.T) {
	cfg := config.NewConfig(filepath.Join(t.TempDir(), "missing"))

	task := Start(context.Background(), cfg)

	sawErr := false
	for ev := range task.Events() {
		if ev.Err != nil {
			sawErr = true
		}
	}
	if !sawErr {
		t.Error("expected a run-level error event")
	}

	if _, err := task.Wait(); err == nil {
		t.Error("Wait() error = nil, want listing failure")
	}
}

func TestTaskStopBeforeStart(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp4"))

	cfg := config.NewConfig(dir)

	task := Start(context.Background(), cfg)
	task.Stop()
	task.Stop() // idempotent

	summary, err := task.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	// The stop flag may land before or after the only file is probed, so
	// only the invariant holds: never more outcomes than files.
	if summary.Total() > 1 {
		t.Errorf("summary.Total() = %d, want at most 1", summary.Total())
	}
}
