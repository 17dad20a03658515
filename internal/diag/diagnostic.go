package diag

import (
	"fmt"

	"prim/internal/source"
)

// Note is a secondary span with context for the primary diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is one concrete replacement in source coordinates. OldText is an
// optional guard: when set, the fix engine verifies the current content of
// the span before applying the edit.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind is a coarse classification used by CLI listings.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactorRewrite:
		return "rewrite"
	case FixKindSourceAction:
		return "source-action"
	}
	return "unknown"
}

// FixApplicability tells how much trust a fix deserves.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe marks fixes that preserve program meaning
	// unconditionally; `fix --all` applies only these.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilitySafeWithHeuristics marks fixes that rely on layout
	// heuristics and deserve a human glance.
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// FixBuildContext carries what lazy fix builders need to produce edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk builds edits on demand, when constructing them eagerly would be
// wasted work for diagnostics that are only ever printed.
type FixThunk func(FixBuildContext) ([]TextEdit, error)

// Fix describes one automated correction attached to a diagnostic.
// Data-only: the engine in internal/fix selects, validates and applies.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	// RequiresAll marks fixes that only make sense together with every other
	// fix of the same diagnostic run (не применять поштучно).
	RequiresAll bool
	Edits       []TextEdit
	Thunk       FixThunk
}

// Resolve expands the thunk into concrete edits. Fixes with materialized
// edits pass through unchanged.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if f.Thunk == nil || len(f.Edits) > 0 {
		return f, nil
	}
	edits, err := f.Thunk(ctx)
	if err != nil {
		return f, err
	}
	out := f
	out.Edits = edits
	out.Thunk = nil
	return out, nil
}

// MaterializeFixes resolves every fix in order. The first failing thunk
// aborts the batch: a half-built fix list must not reach the engine.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	if len(fixes) == 0 {
		return nil, nil
	}
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		resolved, err := f.Resolve(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve fix %q: %w", f.Title, err)
		}
		out = append(out, resolved)
	}
	return out, nil
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
