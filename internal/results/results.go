// Package results persists LLM run artifacts as timestamped text files,
// one per solicitation, named <model>_generated_<YYYYMMDD_HHMMSS>.txt.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout matches the dataset/result naming convention.
const timestampLayout = "20060102_150405"

// now is swapped out by tests for deterministic filenames.
var now = time.Now

// Save writes content under dir with a header block recording the model
// and generation time, creating dir as needed. Returns the file path.
func Save(dir, model, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("results: creating %s: %w", dir, err)
	}

	ts := now()
	name := fmt.Sprintf("%s_generated_%s.txt", sanitize(model), ts.Format(timestampLayout))
	path := filepath.Join(dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "model: %s\n", model)
	fmt.Fprintf(&b, "generated: %s\n", ts.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(content)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("results: writing %s: %w", path, err)
	}

	return path, nil
}

// GraphFilename renders the dataset naming convention for generated
// topologies: W<n>N_<timestamp>.gml.
func GraphFilename(n int) string {
	return fmt.Sprintf("W%dN_%s.gml", n, now().Format(timestampLayout))
}

// sanitize keeps model names filesystem-safe ("openai/gpt-4o" and the like
// appear when talking to gateway endpoints).
func sanitize(model string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		default:
			return r
		}
	}, model)
}
