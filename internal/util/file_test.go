package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.mp4", true},
		{"movie.MKV", true},
		{"movie.WebM", true},
		{"clip.3gp", true},
		{"show.mpeg", true},
		{"/some/dir/film.ts", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noextension", false},
		{"movie.mp4.bak", false},
	}

	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGetFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/movie.mp4", "movie"},
		{"movie.tar.mkv", "movie.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := GetFileStem(tt.path); got != tt.want {
			t.Errorf("GetFileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSamePath(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "file.mp4")
	b := filepath.Join(dir, "sub", "..", "file.mp4")

	if !SamePath(a, b) {
		t.Errorf("SamePath(%q, %q) = false, want true", a, b)
	}
	if SamePath(a, filepath.Join(dir, "other.mp4")) {
		t.Error("SamePath() = true for distinct files, want false")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp4")

	if FileExists(path) {
		t.Error("FileExists() = true before creation")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false after creation")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}
