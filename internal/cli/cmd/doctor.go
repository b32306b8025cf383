package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (ffprobe)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := exec.LookPath("ffprobe")
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: fmt.Errorf("ffprobe not found in PATH; install FFmpeg")}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ffprobe: %s\n", path)
			return nil
		},
	}
}
