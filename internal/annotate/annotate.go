// Package annotate records CRF recommendations in filenames.
//
// An annotation is a trailing suffix on the filename stem, either
// "Predicted CRF <value>" or "skip". Applying an annotation is idempotent:
// any previous annotation, including stacks of them left behind by earlier
// runs, is stripped before the new one is appended.
package annotate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/smartcrf/smartcrf/internal/config"
	"github.com/smartcrf/smartcrf/internal/errors"
	"github.com/smartcrf/smartcrf/internal/util"
)

// SkipSuffix marks a file whose bitrate already sits in the target range.
const SkipSuffix = "skip"

// suffixPattern matches one trailing annotation: an optional "predicted"
// marker, "crf" with 1-2 digits and an optional decimal fraction, or the
// literal "skip". Case-insensitive, leading whitespace absorbed.
var suffixPattern = regexp.MustCompile(`(?i)\s*(predicted\s*)?(crf\s*\d{1,2}(\.\d+)?|skip)\s*$`)

// CleanStem strips every trailing annotation from a filename stem.
// Stripping repeats until the stem is stable, so stacked suffixes such as
// "movie Predicted CRF 20 skip" reduce to "movie" in one call. Each
// substitution shortens the stem, so the loop always terminates.
func CleanStem(stem string) string {
	for {
		stripped := suffixPattern.ReplaceAllString(stem, "")
		if stripped == stem {
			break
		}
		stem = stripped
	}
	return strings.TrimSpace(stem)
}

// FormatValue renders a CRF value: fractional mode always shows one decimal
// place, integer mode none.
func FormatValue(crf float64, mode config.RoundMode) string {
	if mode == config.RoundFractional {
		return fmt.Sprintf("%.1f", crf)
	}
	return fmt.Sprintf("%.0f", crf)
}

// ForCRF builds the annotation text for a predicted CRF value.
func ForCRF(crf float64, mode config.RoundMode) string {
	return "Predicted CRF " + FormatValue(crf, mode)
}

// Outcome describes what Apply did to the file.
type Outcome int

const (
	// Renamed means the file now carries the new annotation.
	Renamed Outcome = iota
	// Unchanged means the filename already matched, so nothing was done.
	Unchanged
	// CollisionSkipped means the candidate path resolves to the source file
	// itself (e.g. a case-only difference on a case-insensitive filesystem);
	// the rename was skipped rather than risk deleting the source.
	CollisionSkipped
)

// Result reports the effect of an Apply call.
type Result struct {
	Outcome         Outcome
	NewPath         string
	RemovedExisting bool
}

// Apply renames the file at path so its stem ends with the given suffix
// text, replacing any prior annotation. A different file already occupying
// the candidate path is deleted to make way; the source file itself is
// never deleted or overwritten.
func Apply(path, suffix string) (Result, error) {
	dir := filepath.Dir(path)
	stem := util.GetFileStem(path)
	ext := filepath.Ext(path)

	newStem := CleanStem(stem) + " " + suffix
	candidate := filepath.Join(dir, newStem+ext)

	if candidate == path {
		return Result{Outcome: Unchanged, NewPath: path}, nil
	}

	removed := false
	if occupant, err := os.Stat(candidate); err == nil {
		if sameFile(path, candidate, occupant) {
			return Result{Outcome: CollisionSkipped, NewPath: path}, nil
		}
		if err := os.Remove(candidate); err != nil {
			return Result{}, errors.NewRenameError(
				fmt.Sprintf("remove existing file %s", filepath.Base(candidate)), err)
		}
		removed = true
	}

	if err := os.Rename(path, candidate); err != nil {
		return Result{}, errors.NewRenameError(
			fmt.Sprintf("rename %s to %s", filepath.Base(path), filepath.Base(candidate)), err)
	}

	return Result{Outcome: Renamed, NewPath: candidate, RemovedExisting: removed}, nil
}

// sameFile reports whether candidate and path are the same file. Path
// normalization catches lexical aliases; os.SameFile catches filesystems
// where distinct spellings reach one inode.
func sameFile(path, candidate string, occupant os.FileInfo) bool {
	if util.SamePath(path, candidate) {
		return true
	}
	src, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(src, occupant)
}
