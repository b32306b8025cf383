// Package util provides file and formatting helpers shared across smartcrf.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// VideoExtensions is the set of recognized video file extensions.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
	".ts":   true,
	".m4v":  true,
	".3gp":  true,
	".mpeg": true,
	".mpg":  true,
}

// IsVideoFile checks if the given path has a recognized video extension.
// The check is case-insensitive and does not touch the filesystem.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return VideoExtensions[ext]
}

// GetFilename returns the filename from a path.
func GetFilename(path string) string {
	return filepath.Base(path)
}

// GetFileStem returns the filename without extension.
func GetFileStem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SamePath reports whether two paths refer to the same location after
// normalizing to absolute, cleaned form. Used to guard renames against
// deleting the source file (e.g. case-only differences on case-insensitive
// filesystems resolve as distinct strings but the same file).
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return filepath.Clean(absA) == filepath.Clean(absB)
}
