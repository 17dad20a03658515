package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FindConfig walks up from startDir to locate prim.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "prim.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing prim.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Manifest couples a loaded Config with the place it came from.
type Manifest struct {
	Path    string // absolute path of prim.toml
	Root    string // directory the configuration governs
	Config  Config
	Unknown []string // manifest keys the schema does not know
}

// LoadManifest finds and loads the manifest governing startDir. ok is false
// when no prim.toml exists up the tree; callers fall back to Default.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, unknown, err := Load(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:    manifestPath,
		Root:    filepath.Dir(manifestPath),
		Config:  cfg,
		Unknown: unknown,
	}, true, nil
}
