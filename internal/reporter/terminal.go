package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/smartcrf/smartcrf/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	progress *progressbar.ProgressBar
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	magenta  *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

func (r *TerminalReporter) ScanStarted(info ScanStartInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("SCAN")
	const w = 10
	r.printLabel(w, "Folder:", info.Directory)
	r.printLabel(w, "Files:", fmt.Sprintf("%d", info.TotalFiles))
	r.printLabel(w, "Target:", fmt.Sprintf("%d-%d kbps", info.MinKbps, info.MaxKbps))
	r.printLabel(w, "Ideal:", util.FormatKbps(info.IdealKbps))
	r.printLabel(w, "Rounding:", info.RoundMode)

	renameStatus := "enabled"
	if !info.Rename {
		renameStatus = "disabled"
	}
	if info.DryRun {
		renameStatus = r.yellow.Sprint("dry run")
	}
	r.printLabel(w, "Rename:", renameStatus)
	fmt.Println()

	r.mu.Lock()
	defer r.mu.Unlock()
	if info.TotalFiles > 0 {
		r.progress = progressbar.NewOptions(
			info.TotalFiles,
			progressbar.OptionSetDescription(""),
			progressbar.OptionSetWidth(40),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionShowDescriptionAtLineEnd(),
			progressbar.OptionSetElapsedTime(false),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "Scanning [",
				BarEnd:        "]",
			}),
		)
	}
}

func (r *TerminalReporter) Outcome(record OutcomeRecord) {
	var tag string
	switch record.Category {
	case CategoryProcessed:
		tag = r.green.Sprint(record.Category.Tag())
	case CategorySkip:
		tag = r.magenta.Sprint(record.Category.Tag())
	case CategoryError:
		tag = r.red.Sprint(record.Category.Tag())
	case CategoryFailed:
		tag = r.red.Sprint(record.Category.Tag())
	case CategoryWarn:
		tag = r.yellow.Sprint(record.Category.Tag())
	default:
		tag = record.Category.Tag()
	}

	if record.Filename == "" {
		fmt.Printf("  %s %s\n", tag, record.Detail)
	} else {
		fmt.Printf("  %s %s | %s\n", tag, r.bold.Sprint(record.Filename), record.Detail)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		switch record.Category {
		case CategoryProcessed, CategorySkip, CategoryError:
			_ = r.progress.Add(1)
		}
	}
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Println()
	_, _ = r.yellow.Printf("WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Context != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) ScanComplete(summary ScanSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("SUMMARY")
	if summary.Stopped {
		fmt.Printf("  %s\n", r.yellow.Sprint("Stopped before all files were processed"))
	}

	const w = 10
	r.printLabel(w, "Processed:", r.green.Sprintf("%d", summary.Summary.Processed))
	r.printLabel(w, "Skip:", r.magenta.Sprintf("%d", summary.Summary.Skip))
	r.printLabel(w, "Error:", r.red.Sprintf("%d", summary.Summary.Error))
	r.printLabel(w, "Failed:", r.red.Sprintf("%d", summary.Summary.Failed))
	r.printLabel(w, "Time:", util.FormatDurationFromSecs(int64(summary.Elapsed.Seconds())))
}
