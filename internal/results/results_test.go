package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2025, 9, 24, 17, 3, 13, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	path, err := Save(filepath.Join(dir, "results"), "openai/gpt-4o", "0 -> 1 -> 2 : 3\n")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := "openai-gpt-4o_generated_20250924_170313.txt"; filepath.Base(path) != want {
		t.Errorf("filename = %s, want %s", filepath.Base(path), want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "model: openai/gpt-4o") {
		t.Error("header missing model line")
	}
	if !strings.Contains(text, "0 -> 1 -> 2 : 3") {
		t.Error("content missing")
	}
}

func TestGraphFilename(t *testing.T) {
	fixed := time.Date(2025, 9, 24, 14, 42, 47, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	if got, want := GraphFilename(20), "W20N_20250924_144247.gml"; got != want {
		t.Errorf("GraphFilename = %s, want %s", got, want)
	}
}
