package annotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcrf/smartcrf/internal/config"
)

func TestCleanStem(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
	}{
		{"no annotation", "movie", "movie"},
		{"predicted crf suffix", "movie Predicted CRF 20", "movie"},
		{"bare crf suffix", "movie crf 20", "movie"},
		{"fractional crf suffix", "movie Predicted CRF 18.5", "movie"},
		{"skip suffix", "movie skip", "movie"},
		{"case insensitive", "movie PREDICTED crf 31", "movie"},
		{"no space before crf digits", "movie crf20", "movie"},
		{"stacked annotations", "movie Predicted CRF 20 skip", "movie"},
		{"triple stack", "movie skip skip Predicted CRF 7", "movie"},
		{"crf embedded mid-name survives", "crf experiments 2024", "crf experiments 2024"},
		{"skip embedded mid-name survives", "skip tracing demo", "skip tracing demo"},
		{"three digit value survives", "movie crf 100", "movie crf 100"},
		{"trailing whitespace trimmed", "movie   ", "movie"},
		{"no residual double spaces", "my movie Predicted CRF 20", "my movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanStem(tt.stem); got != tt.want {
				t.Errorf("CleanStem(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

func TestCleanStemRoundTrip(t *testing.T) {
	stems := []string{"movie", "a file with spaces", "série.2024"}
	suffixes := []string{SkipSuffix, "Predicted CRF 20", "Predicted CRF 18.5"}

	for _, stem := range stems {
		for _, suffix := range suffixes {
			annotated := CleanStem(stem) + " " + suffix
			if got := CleanStem(annotated); got != stem {
				t.Errorf("CleanStem(%q) = %q, want original stem %q", annotated, got, stem)
			}
		}
	}
}

func TestForCRF(t *testing.T) {
	tests := []struct {
		crf  float64
		mode config.RoundMode
		want string
	}{
		{17, config.RoundInteger, "Predicted CRF 17"},
		{0, config.RoundInteger, "Predicted CRF 0"},
		{51, config.RoundInteger, "Predicted CRF 51"},
		{16.2, config.RoundFractional, "Predicted CRF 16.2"},
		{17, config.RoundFractional, "Predicted CRF 17.0"},
	}

	for _, tt := range tests {
		if got := ForCRF(tt.crf, tt.mode); got != tt.want {
			t.Errorf("ForCRF(%v, %s) = %q, want %q", tt.crf, tt.mode, got, tt.want)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("content of "+filepath.Base(path)), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestApplyRenames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "movie.mp4")
	touch(t, src)

	res, err := Apply(src, "Predicted CRF 17")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if res.Outcome != Renamed {
		t.Errorf("Outcome = %v, want Renamed", res.Outcome)
	}

	want := filepath.Join(dir, "movie Predicted CRF 17.mp4")
	if res.NewPath != want {
		t.Errorf("NewPath = %q, want %q", res.NewPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("original file still present")
	}
}

func TestApplyIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	touch(t, path)

	// Apply the same annotation repeatedly; exactly one suffix must remain.
	for i := 0; i < 3; i++ {
		res, err := Apply(path, SkipSuffix)
		if err != nil {
			t.Fatalf("Apply() round %d error = %v", i, err)
		}
		path = res.NewPath
	}

	want := filepath.Join(dir, "movie skip.mp4")
	if path != want {
		t.Errorf("final path = %q, want %q", path, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d files, want 1", len(entries))
	}
}

func TestApplySecondAnnotationReplacesFirst(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "movie Predicted CRF 20.mp4")
	touch(t, src)

	res, err := Apply(src, SkipSuffix)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := filepath.Join(dir, "movie skip.mp4")
	if res.NewPath != want {
		t.Errorf("NewPath = %q, want %q", res.NewPath, want)
	}
}

func TestApplyNoOpWhenAlreadyAnnotated(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "movie skip.mp4")
	touch(t, src)

	res, err := Apply(src, SkipSuffix)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if res.Outcome != Unchanged {
		t.Errorf("Outcome = %v, want Unchanged", res.Outcome)
	}
	if res.NewPath != src {
		t.Errorf("NewPath = %q, want unchanged %q", res.NewPath, src)
	}
}

func TestApplyDeletesDifferentOccupant(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "movie.mp4")
	occupant := filepath.Join(dir, "movie skip.mp4")
	touch(t, src)
	touch(t, occupant)

	res, err := Apply(src, SkipSuffix)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !res.RemovedExisting {
		t.Error("RemovedExisting = false, want true")
	}

	// The survivor must carry the source's content, not the occupant's.
	data, err := os.ReadFile(res.NewPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content of movie.mp4" {
		t.Errorf("surviving content = %q, want the source file's content", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d files, want 1", len(entries))
	}
}

func TestApplyMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ghost.mp4")

	if _, err := Apply(src, SkipSuffix); err == nil {
		t.Error("Apply() on a missing file succeeded, want error")
	}
}

func TestApplyStackedHistoricalSuffixes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "movie crf 20 Predicted CRF 19 skip.mp4")
	touch(t, src)

	res, err := Apply(src, "Predicted CRF 21")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := filepath.Join(dir, "movie Predicted CRF 21.mp4")
	if res.NewPath != want {
		t.Errorf("NewPath = %q, want %q", res.NewPath, want)
	}
}
