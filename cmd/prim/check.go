package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"prim/internal/diag"
	"prim/internal/diagfmt"
	"prim/internal/driver"
	"prim/internal/source"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>",
	Short: "Check layout of source files",
	Long: `Run layout rules over a single file or every configured source file
under a directory and report the diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers for directories (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("with-notes", false, "include secondary notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "include fix previews in output")
	checkCmd.Flags().Bool("fullpath", false, "print absolute file paths")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk diagnostics cache")
	checkCmd.Flags().Bool("no-ui", false, "disable the progress display for directories")
	checkCmd.Flags().String("fail-on", "warning", "lowest severity that fails the run (error|warning|never)")
}

// outputOptions собирает настройки вывода, общие для одиночного файла и
// директории.
type outputOptions struct {
	format    string
	color     bool
	withNotes bool
	suggest   bool
	preview   bool
	pathMode  diagfmt.PathMode
	quiet     bool
}

func (o outputOptions) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:       o.color,
		Context:     1,
		PathMode:    o.pathMode,
		ShowNotes:   o.withNotes,
		ShowFixes:   o.suggest,
		ShowPreview: o.preview,
	}
}

func (o outputOptions) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         o.pathMode,
		IncludeNotes:     o.withNotes,
		IncludeFixes:     o.suggest,
		IncludePreviews:  o.preview,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullpath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return fmt.Errorf("failed to get no-ui flag: %w", err)
	}
	failOn, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return fmt.Errorf("failed to get fail-on flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if !validFormat(format) {
		return fmt.Errorf("unknown format: %s (expected pretty|short|json|sarif)", format)
	}
	failLevel, failEnabled, err := parseFailOn(failOn)
	if err != nil {
		return err
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
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

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache(driver.DefaultCacheApp)
		if err != nil {
			// Кеш не обязателен: работаем дальше без него.
			if !quiet {
				fmt.Fprintf(os.Stderr, "warning: disk cache disabled: %v\n", err)
			}
			cache = nil
		}
	}

	opts := driver.CheckOptions{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
		EnableTimings:  timings,
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	out := outputOptions{
		format:    format,
		color:     useColor,
		withNotes: withNotes,
		suggest:   suggest,
		preview:   preview,
		pathMode:  diagfmt.PathModeAuto,
		quiet:     quiet,
	}
	if fullpath {
		out.pathMode = diagfmt.PathModeAbsolute
	}

	var failed bool
	if info.IsDir() {
		useUI := !noUI && !quiet && format == "pretty" && isTerminal(os.Stdout)
		failed, err = runCheckDir(cmd.Context(), target, opts, out, failLevel, failEnabled, useUI)
	} else {
		failed, err = runCheckFile(target, opts, out, failLevel, failEnabled)
	}
	if err != nil {
		return err
	}
	if failed {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func validFormat(format string) bool {
	switch format {
	case "pretty", "short", "json", "sarif":
		return true
	}
	return false
}

// parseFailOn возвращает порог серьёзности и признак "порог включён".
func parseFailOn(value string) (diag.Severity, bool, error) {
	switch value {
	case "error":
		return diag.SevError, true, nil
	case "warning":
		return diag.SevWarning, true, nil
	case "never":
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("unknown fail-on value: %s (expected error|warning|never)", value)
}

func bagFails(bag *diag.Bag, level diag.Severity) bool {
	for _, d := range bag.Items() {
		if d.Severity >= level {
			return true
		}
	}
	return false
}

// countProblems считает диагностики уровня warning и выше; info (например,
// тайминги) в сводку не попадает.
func countProblems(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevWarning {
			n++
		}
	}
	return n
}

func checkSarifMeta(invocationArgs []string) diagfmt.SarifRunMeta {
	return diagfmt.SarifRunMeta{
		ToolName:       "prim",
		ToolVersion:    "0.1.0",
		InvocationArgs: invocationArgs,
	}
}

func runCheckFile(path string, opts driver.CheckOptions, out outputOptions, failLevel diag.Severity, failEnabled bool) (bool, error) {
	result, err := driver.Check(path, opts)
	if err != nil {
		return false, fmt.Errorf("check failed: %w", err)
	}
	if err := renderBag(os.Stdout, result.Bag, result.FileSet, out, checkSarifMeta([]string{"check", path})); err != nil {
		return false, err
	}
	return failEnabled && bagFails(result.Bag, failLevel), nil
}

func runCheckDir(ctx context.Context, dir string, opts driver.CheckOptions, out outputOptions, failLevel diag.Severity, failEnabled bool, useUI bool) (bool, error) {
	var (
		fileSet *source.FileSet
		results []driver.CheckDirResult
		err     error
	)
	if useUI {
		fileSet, results, err = runCheckDirWithUI(ctx, "checking "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.CheckDir(ctx, dir, opts)
	}
	if err != nil {
		return false, fmt.Errorf("check failed: %w", err)
	}

	switch out.format {
	case "pretty":
		renderDirPretty(os.Stdout, fileSet, results, out)
	case "short":
		var all []diag.Diagnostic
		for _, res := range results {
			all = append(all, res.Bag.Items()...)
		}
		fmt.Fprint(os.Stdout, diag.FormatGoldenDiagnostics(all, fileSet, out.withNotes))
	case "json":
		if err := renderDirJSON(os.Stdout, fileSet, results, out); err != nil {
			return false, err
		}
	case "sarif":
		total := 0
		for _, res := range results {
			total += res.Bag.Len()
		}
		combined := diag.NewBag(total)
		for _, res := range results {
			combined.Merge(res.Bag)
		}
		combined.Sort()
		if err := diagfmt.Sarif(os.Stdout, combined, fileSet, checkSarifMeta([]string{"check", dir})); err != nil {
			return false, fmt.Errorf("failed to encode sarif: %w", err)
		}
	}

	if !failEnabled {
		return false, nil
	}
	for _, res := range results {
		if bagFails(res.Bag, failLevel) {
			return true, nil
		}
	}
	return false, nil
}

func renderBag(w io.Writer, bag *diag.Bag, fs *source.FileSet, out outputOptions, meta diagfmt.SarifRunMeta) error {
	switch out.format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, out.prettyOpts())
	case "short":
		fmt.Fprint(w, diag.FormatGoldenDiagnostics(bag.Items(), fs, out.withNotes))
	case "json":
		if err := diagfmt.JSON(w, bag, fs, out.jsonOpts()); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	case "sarif":
		if err := diagfmt.Sarif(w, bag, fs, meta); err != nil {
			return fmt.Errorf("failed to encode sarif: %w", err)
		}
	}
	return nil
}

func renderDirPretty(w io.Writer, fs *source.FileSet, results []driver.CheckDirResult, out outputOptions) {
	popts := out.prettyOpts()
	problems := 0
	for _, res := range results {
		problems += countProblems(res.Bag)
		if res.Bag.Len() == 0 {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n", displayResultPath(res.Path, out.pathMode))
		diagfmt.Pretty(w, res.Bag, fs, popts)
		fmt.Fprintln(w)
	}
	if !out.quiet {
		fmt.Fprintf(w, "checked %d files, %d problems\n", len(results), problems)
	}
}

func renderDirJSON(w io.Writer, fs *source.FileSet, results []driver.CheckDirResult, out outputOptions) error {
	jopts := out.jsonOpts()
	payload := make(map[string]diagfmt.DiagnosticsOutput, len(results))
	for _, res := range results {
		output, err := diagfmt.BuildDiagnosticsOutput(res.Bag, fs, jopts)
		if err != nil {
			return fmt.Errorf("failed to build diagnostics for %s: %w", res.Path, err)
		}
		payload[displayResultPath(res.Path, out.pathMode)] = output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode diagnostics: %w", err)
	}
	return nil
}

// displayResultPath форматирует путь результата обхода. Для файлов, которые
// не удалось загрузить, записи в FileSet нет, поэтому работаем со строкой.
func displayResultPath(path string, mode diagfmt.PathMode) string {
	switch mode {
	case diagfmt.PathModeAbsolute:
		if abs, err := source.AbsolutePath(path); err == nil {
			return abs
		}
		return path
	case diagfmt.PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
