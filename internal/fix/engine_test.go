package fix

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prim/internal/diag"
	"prim/internal/source"
)

// writeTestFile кладёт файл на диск и загружает его в FileSet.
func writeTestFile(t *testing.T, fs *source.FileSet, dir, name, content string) (string, source.FileID) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return path, id
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.c", []byte(""))
	span := source.Span{File: fileID, Start: 0, End: 0}

	diagnostics := []diag.Diagnostic{{
		Code:    diag.StyleMissingFinalNewline,
		Message: "missing final newline",
		Primary: span,
		Fixes: []diag.Fix{
			{
				ID:    "fix-duplicate",
				Title: "insert final newline",
				Edits: []diag.TextEdit{{Span: span, NewText: "\n"}},
			},
			{
				ID:    "fix-duplicate",
				Title: "insert final newline again",
				Edits: []diag.TextEdit{{Span: span, NewText: "\n"}},
			},
		},
	}}

	ctx := diag.FixBuildContext{FileSet: fs}
	candidates, skips := gatherCandidates(ctx, diagnostics)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	if len(skips) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(skips))
	}

	skip := skips[0]
	if skip.ID != "fix-duplicate" {
		t.Fatalf("expected skipped fix id 'fix-duplicate', got %q", skip.ID)
	}
	if skip.Reason != "duplicate fix id" {
		t.Fatalf("expected duplicate fix reason, got %q", skip.Reason)
	}
}

func TestApplyAllRewritesFile(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSetWithBase(dir)
	path, fileID := writeTestFile(t, fs, dir, "sample.c", "int x; \nint y;\n")

	diagnostics := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.StyleTrailingWhitespace,
		Message:  "trailing whitespace before line break",
		Primary:  source.Span{File: fileID, Start: 6, End: 7},
		Fixes: []diag.Fix{
			DeleteSpan("Remove trailing whitespace", source.Span{File: fileID, Start: 6, End: 7}, " "),
		},
	}}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(result.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d", len(result.Applied))
	}
	if result.Applied[0].EditCount != 1 {
		t.Errorf("expected 1 edit, got %d", result.Applied[0].EditCount)
	}

	if got := readBack(t, path); got != "int x;\nint y;\n" {
		t.Errorf("unexpected file content after fix: %q", got)
	}

	if len(result.FileChanges) != 1 {
		t.Fatalf("expected 1 file change, got %d", len(result.FileChanges))
	}
	change := result.FileChanges[0]
	if change.Path != "sample.c" {
		t.Errorf("expected relative path 'sample.c', got %q", change.Path)
	}
	if change.EditCount != 1 {
		t.Errorf("expected 1 edit in file change, got %d", change.EditCount)
	}
}

func TestApplyDryRunLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSetWithBase(dir)
	path, fileID := writeTestFile(t, fs, dir, "sample.c", "int x; \n")

	diagnostics := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.StyleTrailingWhitespace,
		Message:  "trailing whitespace before line break",
		Primary:  source.Span{File: fileID, Start: 6, End: 7},
		Fixes: []diag.Fix{
			DeleteSpan("Remove trailing whitespace", source.Span{File: fileID, Start: 6, End: 7}, " "),
		},
	}}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(result.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d", len(result.Applied))
	}
	if got := readBack(t, path); got != "int x; \n" {
		t.Errorf("dry run must not touch the file, got %q", got)
	}
	if len(result.FileChanges) != 1 {
		t.Fatalf("expected 1 file change, got %d", len(result.FileChanges))
	}
	if got := string(result.FileChanges[0].NewContent); got != "int x;\n" {
		t.Errorf("expected preview content %q, got %q", "int x;\n", got)
	}
}

func TestApplyGuardMismatchSkips(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSetWithBase(dir)
	path, fileID := writeTestFile(t, fs, dir, "sample.c", "int x; \n")

	diagnostics := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.StyleTrailingWhitespace,
		Message:  "trailing whitespace before line break",
		Primary:  source.Span{File: fileID, Start: 6, End: 7},
		Fixes: []diag.Fix{
			DeleteSpan("Remove trailing whitespace", source.Span{File: fileID, Start: 6, End: 7}, "\t"),
		},
	}}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}

	if len(result.Applied) != 0 {
		t.Fatalf("expected no applied fixes, got %d", len(result.Applied))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(result.Skipped))
	}
	if result.Skipped[0].Reason != "existing text does not match expected content" {
		t.Errorf("unexpected skip reason %q", result.Skipped[0].Reason)
	}
	if got := readBack(t, path); got != "int x; \n" {
		t.Errorf("file must stay untouched, got %q", got)
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("stdin.c", []byte("int x; \n"))

	diagnostics := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.StyleTrailingWhitespace,
		Message:  "trailing whitespace before line break",
		Primary:  source.Span{File: fileID, Start: 6, End: 7},
		Fixes: []diag.Fix{
			DeleteSpan("Remove trailing whitespace", source.Span{File: fileID, Start: 6, End: 7}, " "),
		},
	}}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(result.Skipped))
	}
	if result.Skipped[0].Reason != "target file is virtual" {
		t.Errorf("unexpected skip reason %q", result.Skipped[0].Reason)
	}
}

func TestApplyModeIDRespectsRequiresAll(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.c", []byte("int x;\n"))
	span := source.Span{File: fileID, Start: 0, End: 1}

	diagnostics := []diag.Diagnostic{{
		Code:    diag.StyleTooManyBlankLines,
		Message: "too many consecutive blank lines",
		Primary: span,
		Fixes: []diag.Fix{{
			ID:          "batch-fix",
			Title:       "Collapse blank lines",
			RequiresAll: true,
			Edits:       []diag.TextEdit{{Span: span, NewText: ""}},
		}},
	}}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeID, TargetID: "batch-fix"})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(result.Skipped))
	}
	if result.Skipped[0].Reason != "fix requires all fixes to be applied" {
		t.Errorf("unexpected skip reason %q", result.Skipped[0].Reason)
	}
}

func TestApplyModeOncePrefersAlwaysSafe(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSetWithBase(dir)
	path, fileID := writeTestFile(t, fs, dir, "sample.c", "int a; \nint b; \n")

	heuristic := DeleteSpan("Remove first trailing whitespace",
		source.Span{File: fileID, Start: 6, End: 7}, " ",
		WithID("heuristic-fix"),
		WithApplicability(diag.FixApplicabilitySafeWithHeuristics))
	safe := DeleteSpan("Remove second trailing whitespace",
		source.Span{File: fileID, Start: 14, End: 15}, " ",
		WithID("safe-fix"))

	diagnostics := []diag.Diagnostic{
		{
			Code:    diag.StyleTrailingWhitespace,
			Message: "trailing whitespace before line break",
			Primary: source.Span{File: fileID, Start: 6, End: 7},
			Fixes:   []diag.Fix{heuristic},
		},
		{
			Code:    diag.StyleTrailingWhitespace,
			Message: "trailing whitespace before line break",
			Primary: source.Span{File: fileID, Start: 14, End: 15},
			Fixes:   []diag.Fix{safe},
		},
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(result.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d", len(result.Applied))
	}
	if result.Applied[0].ID != "safe-fix" {
		t.Errorf("expected the always-safe fix, got %q", result.Applied[0].ID)
	}
	if got := readBack(t, path); got != "int a; \nint b;\n" {
		t.Errorf("unexpected file content after fix: %q", got)
	}
}

func TestApplyConflictingFixesSecondSkipped(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSetWithBase(dir)
	path, fileID := writeTestFile(t, fs, dir, "sample.c", "int x;\n\n\n\n")

	// Оба фикса претендуют на пересекающийся диапазон пустых строк.
	first := DeleteSpan("Remove blank lines",
		source.Span{File: fileID, Start: 7, End: 10}, "\n\n\n",
		WithID("first-fix"))
	second := DeleteSpan("Remove one blank line",
		source.Span{File: fileID, Start: 8, End: 9}, "\n",
		WithID("second-fix"))

	diagnostics := []diag.Diagnostic{
		{
			Code:    diag.StyleFileEndBlankLines,
			Message: "blank lines at end of file",
			Primary: source.Span{File: fileID, Start: 7, End: 10},
			Fixes:   []diag.Fix{first},
		},
		{
			Code:    diag.StyleTooManyBlankLines,
			Message: "too many consecutive blank lines",
			Primary: source.Span{File: fileID, Start: 8, End: 9},
			Fixes:   []diag.Fix{second},
		},
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(result.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d", len(result.Applied))
	}
	if result.Applied[0].ID != "first-fix" {
		t.Errorf("expected first fix applied, got %q", result.Applied[0].ID)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(result.Skipped))
	}
	if !strings.HasPrefix(result.Skipped[0].Reason, "conflicts with previously applied edits") {
		t.Errorf("unexpected skip reason %q", result.Skipped[0].Reason)
	}
	if got := readBack(t, path); got != "int x;\n" {
		t.Errorf("unexpected file content after fix: %q", got)
	}
}
