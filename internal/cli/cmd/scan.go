package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/ffprobe"
	"github.com/smartcrf/smartcrf/internal/logging"
	"github.com/smartcrf/smartcrf/internal/processing"
	"github.com/smartcrf/smartcrf/internal/reporter"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scan",
		Short:         "Scan a directory and annotate filenames with predicted CRF values",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScan,
	}

	bindScanFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func bindScanFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "Directory containing video files (required)")
	fs.Int("min", config.DefaultTargetMin, "Lower bound of the target bitrate range (kbps)")
	fs.Int("max", config.DefaultTargetMax, "Upper bound of the target bitrate range (kbps)")
	fs.Int("ideal", 0, "Ideal bitrate used for prediction (kbps); 0 uses the range midpoint")
	fs.Bool("no-rename", false, "Classify and report without renaming files")
	fs.Bool("fractional", false, "Predict CRF to one decimal place instead of whole numbers")
	fs.Bool("dry-run", false, "Show planned renames without touching the filesystem")
	fs.Bool("json", false, "Emit newline-delimited JSON events instead of terminal output")
	fs.StringP("log-dir", "l", "", "Log directory (defaults to INPUT/logs)")
	fs.Bool("no-log", false, "Disable log file creation")
}

func runScan(cmd *cobra.Command, _ []string) error {
	inputDir, _ := cmd.Flags().GetString("input")
	minKbps, _ := cmd.Flags().GetInt("min")
	maxKbps, _ := cmd.Flags().GetInt("max")
	idealKbps, _ := cmd.Flags().GetInt("ideal")
	noRename, _ := cmd.Flags().GetBool("no-rename")
	fractional, _ := cmd.Flags().GetBool("fractional")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jsonOut, _ := cmd.Flags().GetBool("json")
	logDir, _ := cmd.Flags().GetString("log-dir")
	noLog, _ := cmd.Flags().GetBool("no-log")
	verbose := getPersistentBool(cmd, "verbose", false)

	if !ffprobe.Available() {
		return &ExitError{Code: ExitMissingDep, Err: fmt.Errorf("ffprobe not found in PATH; install FFmpeg to use smartcrf")}
	}

	inputDir, err := filepath.Abs(inputDir)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("invalid input directory: %w", err)}
	}

	if logDir == "" {
		logDir = filepath.Join(inputDir, "logs")
	}

	cfg := config.NewConfig(inputDir)
	cfg.LogDir = logDir
	cfg.Target = config.TargetRange{Min: minKbps, Max: maxKbps, Ideal: idealKbps}
	if idealKbps == 0 {
		cfg.Target.Ideal = cfg.Target.Midpoint()
	}
	cfg.Rename = !noRename
	cfg.DryRun = dryRun
	cfg.Verbose = verbose
	if fractional {
		cfg.Round = config.RoundFractional
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("invalid configuration: %w", err)}
	}

	logger, err := logging.Setup(cfg.LogDir, verbose, noLog)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("failed to setup logging: %w", err)}
	}
	defer func() { _ = logger.Close() }()

	var front reporter.Reporter
	if jsonOut {
		front = reporter.NewJSONReporter()
	} else {
		front = reporter.NewTerminalReporter()
	}

	rep := reporter.NewCompositeReporter(
		front,
		reporter.NewSinkReporter(func(line string) { logger.Info("%s", line) }),
	)

	o := processing.New(cfg, rep)
	if _, err := o.ProcessDirectory(cmd.Context(), nil); err != nil {
		logger.Error("Scan failed: %v", err)
		return &ExitError{Code: ExitScanError, Err: err}
	}

	if path := logger.FilePath(); path != "" && !jsonOut {
		fmt.Fprintf(cmd.OutOrStdout(), "Log file: %s\n", path)
	}
	return nil
}
