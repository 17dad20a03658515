package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultManifest returns the starter prim.toml written by `prim init`. It
// spells out what Default already applies, so a fresh manifest does not
// change behavior.
func DefaultManifest() string {
	return `# prim layout linter manifest
[style]
max_blank_lines = 2
require_final_newline = true

[files]
extensions = [".c", ".h", ".cc", ".cpp", ".hpp", ".cs"]
exclude = [".git", "build", "vendor"]

[rules]
# Example: disabled = ["trailing-whitespace"]
disabled = []
`
}

// WriteManifest writes the starter manifest into dir, refusing to clobber an
// existing one. It returns the path of the written file.
func WriteManifest(dir string) (string, error) {
	path := filepath.Join(dir, "prim.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project already initialized: %s exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(DefaultManifest()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}
