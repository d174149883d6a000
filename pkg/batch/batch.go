package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoMatches is returned by Expand when a pattern matches no files
var ErrNoMatches = errors.New("no files match pattern")

// Summary holds the outcome counts of a batch run
type Summary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of files processed
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// IsPattern reports whether input should be treated as a glob pattern
// rather than a literal file path.
func IsPattern(input string) bool {
	return strings.ContainsAny(input, "*?[]")
}

// Expand resolves a glob pattern to the matching file paths, in the order
// the filesystem enumeration returns them.
func Expand(pattern string) ([]string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	return files, nil
}

// Run invokes process once per path, sequentially, counting successes and
// failures. A failing file never aborts the batch and is never retried.
func Run(paths []string, process func(path string) error) Summary {
	var summary Summary
	for _, path := range paths {
		if err := process(path); err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}
	return summary
}
