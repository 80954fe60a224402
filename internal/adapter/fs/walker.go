package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"sentilex/internal/domain"
)

// Resolver turns configured source paths, which may be doublestar globs,
// into concrete files relative to a root directory.
type Resolver struct {
	root string
}

func NewResolver(root string) *Resolver {
	if root == "" {
		root = "."
	}
	return &Resolver{root: root}
}

// Resolve returns the first file matching pattern in lexical order. A plain
// path is returned as is when it exists.
func (r *Resolver) Resolve(pattern string) (string, error) {
	matches, err := r.ResolveAll(pattern)
	if err != nil {
		return "", err
	}
	return matches[0], nil
}

// ResolveAll returns every regular file matching pattern, sorted.
func (r *Resolver) ResolveAll(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty source path: %w", domain.ErrSourceUnavailable)
	}
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(r.root, pattern)
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, domain.ErrSourceUnavailable)
	}

	candidates, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, domain.ErrSourceUnavailable)
	}

	var files []string
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no file matches %s: %w", pattern, domain.ErrSourceUnavailable)
	}
	slices.Sort(files)
	return files, nil
}

// Open opens path for reading, reporting failures as ErrSourceUnavailable.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", path, domain.ErrSourceUnavailable, err)
	}
	return f, nil
}
