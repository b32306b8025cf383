// Package discovery provides file discovery for bitrate scanning.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smartcrf/smartcrf/internal/errors"
	"github.com/smartcrf/smartcrf/internal/util"
)

// FindVideoFiles lists the video files that are direct children of inputDir.
// The listing is non-recursive; entries are filtered by recognized video
// extension (case-insensitive) and returned sorted alphabetically by
// filename. An empty result is not an error — only a failed listing is.
func FindVideoFiles(inputDir string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, errors.NewDirectoryError(inputDir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewPathError(inputDir + " is not a directory")
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.NewDirectoryError(inputDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Skip hidden files
		if strings.HasPrefix(name, ".") {
			continue
		}

		if util.IsVideoFile(name) {
			files = append(files, filepath.Join(inputDir, name))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	return files, nil
}
