package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/menta2k/product-bg/internal/utils"
)

const (
	noBackgroundSuffix   = "_no_bg"
	withBackgroundSuffix = "_with_bg"
	outputExtension      = ".webp"
)

// NoBackgroundName derives the output filename for a background-removal
// result: {base}_no_bg.webp
func NoBackgroundName(inputPath string) string {
	return baseName(inputPath) + noBackgroundSuffix + outputExtension
}

// WithBackgroundName derives the output filename for a compositing
// result: a trailing "_no_bg" is stripped from the product's basename if
// present, then "_with_bg.webp" is appended.
func WithBackgroundName(productPath string) string {
	base := strings.TrimSuffix(baseName(productPath), noBackgroundSuffix)
	return base + withBackgroundSuffix + outputExtension
}

// Resolve joins an output filename with its target directory. An explicit
// output directory is created if absent; otherwise the input file's own
// directory is used.
func Resolve(inputPath, name, outputDir string) (string, error) {
	if outputDir != "" {
		if err := utils.EnsureDir(outputDir); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		return filepath.Join(outputDir, name), nil
	}
	return filepath.Join(filepath.Dir(inputPath), name), nil
}

// baseName extracts the base filename without extension
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
