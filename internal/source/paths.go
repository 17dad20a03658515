package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AbsolutePath resolves p against the current working directory.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", p, err)
	}
	return normalizePath(abs), nil
}

// RelativePath rewrites p relative to baseDir. Paths outside baseDir fall
// back to the absolute form: "../../.." chains read worse than a full path.
func RelativePath(p, baseDir string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", p, err)
	}
	rel, err := filepath.Rel(baseDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element.
func BaseName(p string) string {
	return filepath.Base(filepath.FromSlash(p))
}
