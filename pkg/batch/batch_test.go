package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestIsPattern(t *testing.T) {
	cases := map[string]bool{
		"products/*.jpg": true,
		"image?.png":     true,
		"img[0-9].jpg":   true,
		"photo.jpg":      false,
		"dir/photo.webp": false,
		"weird name.png": false,
	}

	for input, expected := range cases {
		if got := IsPattern(input); got != expected {
			t.Errorf("IsPattern(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpg", "c.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Expand(filepath.Join(dir, "*.jpg"))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(files))
	}
}

func TestExpandNoMatches(t *testing.T) {
	_, err := Expand(filepath.Join(t.TempDir(), "*.jpg"))
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Expected ErrNoMatches, got %v", err)
	}
}

func TestRunCountsOutcomes(t *testing.T) {
	var visited []string

	summary := Run([]string{"a", "b", "c"}, func(path string) error {
		visited = append(visited, path)
		if path == "b" {
			return fmt.Errorf("corrupt image")
		}
		return nil
	})

	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("Expected 2 succeeded / 1 failed, got %d / %d", summary.Succeeded, summary.Failed)
	}

	if summary.Total() != 3 {
		t.Errorf("Expected total 3, got %d", summary.Total())
	}

	// One bad file never aborts the batch
	if len(visited) != 3 {
		t.Errorf("Expected all 3 paths visited, got %v", visited)
	}
}
