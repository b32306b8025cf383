// Package ffprobe reads media bitrates by shelling out to ffprobe.
package ffprobe

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/smartcrf/smartcrf/internal/errors"
)

// binaryName is the external probing tool invoked for every file.
const binaryName = "ffprobe"

// Available reports whether the ffprobe binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(binaryName)
	return err == nil
}

// ReadBitrateKbps returns the bitrate of the file at path in kilobits per
// second. It tries the video stream bitrate first and falls back to the
// container-level bitrate when the stream does not report one. The caller
// bounds the wait through ctx; a missing binary, timeout, non-zero exit, or
// unparseable output all yield a bitrate-unavailable error, never a panic.
func ReadBitrateKbps(ctx context.Context, path string) (int, error) {
	bps, found, err := queryBitrate(ctx, path, "stream=bit_rate", true)
	if err != nil {
		return 0, errors.NewBitrateUnavailableError(path, err)
	}

	if !found {
		bps, found, err = queryBitrate(ctx, path, "format=bit_rate", false)
		if err != nil {
			return 0, errors.NewBitrateUnavailableError(path, err)
		}
	}

	if !found {
		return 0, errors.NewBitrateUnavailableError(path, nil)
	}

	// bps to kbps, integer division.
	return int(bps / 1000), nil
}

// queryBitrate runs a single ffprobe invocation selecting one bit_rate entry
// and parses its plain-decimal output. found=false means ffprobe ran fine
// but reported no usable value (empty or N/A), which triggers the fallback.
func queryBitrate(ctx context.Context, path, entries string, selectVideo bool) (bps int64, found bool, err error) {
	args := []string{"-v", "error"}
	if selectVideo {
		args = append(args, "-select_streams", "v:0")
	}
	args = append(args,
		"-show_entries", entries,
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	cmd := exec.CommandContext(ctx, binaryName, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr // keep ffprobe diagnostics out of our output

	output, runErr := cmd.Output()
	if runErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return 0, false, errors.NewCommandTimeoutError(binaryName)
		}
		return 0, false, errors.WrapExecError(binaryName, runErr, strings.TrimSpace(stderr.String()))
	}

	return parseBitrateOutput(output)
}

// parseBitrateOutput extracts a non-negative integer bps value from raw
// ffprobe output. Empty output and the literal N/A report found=false;
// anything else that is not a non-negative integer is an error.
func parseBitrateOutput(output []byte) (bps int64, found bool, err error) {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return 0, false, nil
	}

	// ffprobe may emit one line per matching stream; the first carries the
	// selected stream's value.
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}

	if strings.EqualFold(text, "N/A") {
		return 0, false, nil
	}

	value, parseErr := strconv.ParseInt(text, 10, 64)
	if parseErr != nil || value < 0 {
		return 0, false, errors.NewProbeParseError("unparseable bitrate output: " + text)
	}

	return value, true, nil
}
