package rules

import (
	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/source"
)

// MissingFinalNewline flags files whose last line has no terminator.
type MissingFinalNewline struct{}

func (MissingFinalNewline) Code() diag.Code { return diag.StyleMissingFinalNewline }
func (MissingFinalNewline) Name() string    { return "missing-final-newline" }

func (MissingFinalNewline) Check(ctx *Ctx) {
	if !ctx.Config.RequireFinalNewline || ctx.File.EndsWithNewline() {
		return
	}
	end := uint32(len(ctx.File.Content))
	sp := source.Span{File: ctx.File.ID, Start: end, End: end}
	ins := fix.InsertText("add final newline", sp, "\n", "")
	diag.ReportWarning(ctx.Reporter, diag.StyleMissingFinalNewline, sp, "no newline at end of file").
		WithFixSuggestion(ins).
		Emit()
}
