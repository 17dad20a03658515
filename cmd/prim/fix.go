package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"prim/internal/diag"
	"prim/internal/driver"
	"prim/internal/fix"
	"prim/internal/source"

	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>",
	Short: "Apply layout fixes to source files",
	Long: `Check layout and rewrite files with the suggested fixes. By default only
the first applicable fix is applied; use --all to apply every fix.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every applicable fix")
	fixCmd.Flags().Bool("once", false, "apply only the first applicable fix")
	fixCmd.Flags().String("id", "", "apply only the fix with the given id")
	fixCmd.Flags().Bool("dry-run", false, "report planned changes without writing files")
	fixCmd.Flags().Bool("no-ui", false, "disable the progress display for directories")
	fixCmd.Flags().Int("jobs", 0, "number of parallel workers for directories (0 = GOMAXPROCS)")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return fmt.Errorf("failed to get once flag: %w", err)
	}
	fixID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("failed to get id flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return fmt.Errorf("failed to get no-ui flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if applyAll && applyOnce {
		return fmt.Errorf("fix: --all and --once are mutually exclusive")
	}
	if fixID != "" && (applyAll || applyOnce) {
		return fmt.Errorf("fix: --id cannot be combined with --all or --once")
	}

	mode := fix.ApplyModeOnce
	switch {
	case fixID != "":
		mode = fix.ApplyModeID
	case applyAll:
		mode = fix.ApplyModeAll
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}
	if info.IsDir() && fixID != "" {
		return fmt.Errorf("fix: --id can only be used with a single file")
	}

	cfg, err := resolveConfig(cmd, target)
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Изменённые файлы перечитываются при следующем запуске, кеш тут не нужен.
	opts := driver.CheckOptions{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	applyOpts := fix.ApplyOptions{Mode: mode, TargetID: fixID, DryRun: dryRun}

	var (
		fileSet     *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if info.IsDir() {
		useUI := !noUI && !quiet && isTerminal(os.Stdout)
		fileSet, diagnostics, err = collectDirDiagnostics(cmd.Context(), target, opts, useUI)
	} else {
		fileSet, diagnostics, err = collectFileDiagnostics(target, opts)
	}
	if err != nil {
		return err
	}

	res, applyErr := fix.Apply(fileSet, diagnostics, applyOpts)
	return handleApplyResult(res, applyErr, fileSet, dryRun)
}

func collectFileDiagnostics(path string, opts driver.CheckOptions) (*source.FileSet, []diag.Diagnostic, error) {
	result, err := driver.Check(path, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("fix: check failed: %w", err)
	}
	return result.FileSet, result.Bag.Items(), nil
}

func collectDirDiagnostics(ctx context.Context, dir string, opts driver.CheckOptions, useUI bool) (*source.FileSet, []diag.Diagnostic, error) {
	var (
		fileSet *source.FileSet
		results []driver.CheckDirResult
		err     error
	)
	if useUI {
		fileSet, results, err = runCheckDirWithUI(ctx, "fixing "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.CheckDir(ctx, dir, opts)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("fix: check failed: %w", err)
	}

	all := make([]diag.Diagnostic, 0)
	for _, r := range results {
		all = append(all, r.Bag.Items()...)
	}
	return fileSet, all, nil
}

func handleApplyResult(res *fix.ApplyResult, applyErr error, fs *source.FileSet, dryRun bool) error {
	if res == nil {
		return applyErr
	}
	var printErr error

	if len(res.Applied) > 0 {
		header := "Applied %d fix(es):\n"
		if dryRun {
			header = "Would apply %d fix(es):\n"
		}
		_, printErr = fmt.Fprintf(os.Stdout, header, len(res.Applied))
		if printErr != nil {
			return printErr
		}
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			_, printErr = fmt.Fprintf(
				os.Stdout,
				"  %s [%s] at %s (%d edits, %s)\n",
				item.Title,
				item.ID,
				location,
				item.EditCount,
				item.Applicability.String(),
			)
			if printErr != nil {
				return printErr
			}
		}
	}

	if len(res.FileChanges) > 0 {
		header := "Updated files:"
		if dryRun {
			header = "Would update files:"
		}
		_, printErr = fmt.Fprintln(os.Stdout, header)
		if printErr != nil {
			return printErr
		}
		for _, change := range res.FileChanges {
			_, printErr = fmt.Fprintf(os.Stdout, "  %s (%d edits%s)\n", change.Path, change.EditCount, changeSizeNote(fs, change))
			if printErr != nil {
				return printErr
			}
		}
	}

	if len(res.Skipped) > 0 {
		_, printErr = fmt.Fprintln(os.Stdout, "Skipped fixes:")
		if printErr != nil {
			return printErr
		}
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				_, printErr = fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
				if printErr != nil {
					return printErr
				}
			} else {
				_, printErr = fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
				if printErr != nil {
					return printErr
				}
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			_, printErr = fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			if printErr != nil {
				return printErr
			}
			return nil
		}
		return applyErr
	}

	if len(res.Applied) == 0 {
		_, printErr = fmt.Fprintln(os.Stdout, "No fixes applied.")
		if printErr != nil {
			return printErr
		}
	}
	return nil
}

// changeSizeNote показывает дельту размера файла в dry-run, где новый
// контент не записан на диск и виден только из результата.
func changeSizeNote(fs *source.FileSet, change fix.FileChange) string {
	if change.NewContent == nil || fs == nil {
		return ""
	}
	id, ok := fs.GetLatest(change.Path)
	if !ok {
		return ""
	}
	return fmt.Sprintf(", %d -> %d bytes", len(fs.Get(id).Content), len(change.NewContent))
}
