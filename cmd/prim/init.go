package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prim/internal/project"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a prim project",
	Long: `Initialize a prim project by writing a starter prim.toml manifest.
If [path] is omitted, initializes the current directory. A non-existing
path is created first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit resolves the target directory (creating it when missing), refuses
// to overwrite an existing manifest and writes the default prim.toml.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		// путь или имя относительно текущей директории
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath, err := project.WriteManifest(target)
	if err != nil {
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized prim project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", filepath.Base(manifestPath))
	return nil
}
