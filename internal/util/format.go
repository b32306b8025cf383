package util

import "fmt"

// FormatDurationFromSecs formats seconds as HH:MM:SS.
func FormatDurationFromSecs(secs int64) string {
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatKbps renders a kilobits-per-second value for log messages.
func FormatKbps(kbps int) string {
	return fmt.Sprintf("%d kbps", kbps)
}
