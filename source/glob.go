package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns expands input path patterns to concrete files. Supports
// single-level wildcards (*) and recursive wildcards (**). Plain paths must
// exist; glob patterns may legitimately match nothing for an individual
// pattern, but matching nothing overall is an error.
func ExpandPatterns(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := expandPattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no input files matched %s", strings.Join(patterns, ", "))
	}
	return resolved, nil
}

// expandPattern expands a single pattern to regular files.
func expandPattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not a file: %s", absPath)
		}
		return []string{absPath}, nil
	}

	absPattern, err := filepath.Abs(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			files = append(files, m)
		}
	}
	return files, nil
}

// containsGlob reports whether the pattern has glob metacharacters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
