package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNoBackgroundName(t *testing.T) {
	cases := map[string]string{
		"product.jpg":        "product_no_bg.webp",
		"photos/widget.png":  "widget_no_bg.webp",
		"a/b/c/item.tiff":    "item_no_bg.webp",
		"already_no_bg.webp": "already_no_bg_no_bg.webp",
		"noextension":        "noextension_no_bg.webp",
	}

	for input, expected := range cases {
		if got := NoBackgroundName(input); got != expected {
			t.Errorf("NoBackgroundName(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestWithBackgroundName(t *testing.T) {
	cases := map[string]string{
		"widget_no_bg.webp":    "widget_with_bg.webp",
		"widget.webp":          "widget_with_bg.webp",
		"clean/item_no_bg.png": "item_with_bg.webp",
		"photo.jpg":            "photo_with_bg.webp",
	}

	for input, expected := range cases {
		if got := WithBackgroundName(input); got != expected {
			t.Errorf("WithBackgroundName(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestResolveExplicitDir(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")

	path, err := Resolve("products/widget.jpg", "widget_no_bg.webp", outputDir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if path != filepath.Join(outputDir, "widget_no_bg.webp") {
		t.Errorf("Unexpected output path %q", path)
	}

	// The output directory must be created if absent
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected output directory to be created: %v", err)
	}
}

func TestResolveInputDir(t *testing.T) {
	path, err := Resolve("products/widget.jpg", "widget_no_bg.webp", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if path != filepath.Join("products", "widget_no_bg.webp") {
		t.Errorf("Expected output next to input, got %q", path)
	}
}
