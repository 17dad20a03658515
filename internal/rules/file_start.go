package rules

import (
	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/trivia"
)

// FileStartBlankLines flags blank lines before the first line of the file
// that carries anything at all.
type FileStartBlankLines struct{}

func (FileStartBlankLines) Code() diag.Code { return diag.StyleFileStartBlankLines }
func (FileStartBlankLines) Name() string    { return "blank-lines-at-file-start" }

func (FileStartBlankLines) Check(ctx *Ctx) {
	lead := ctx.Tokens[0].Leading
	if len(lead) == 0 {
		return
	}
	run := lead
	if idx, ok := trivia.FirstNonBlankLine(lead); ok {
		if idx == 0 {
			return
		}
		run = lead[:idx]
	}

	n := countBreaks(run)
	sp := spanBetween(run[0], run[len(run)-1])
	del := fix.DeleteSpan("remove blank lines at start of file", sp, ctx.guard(sp))
	diag.ReportWarning(ctx.Reporter, diag.StyleFileStartBlankLines, sp, blankLinesNoun(n)+" at start of file").
		WithFixSuggestion(del).
		Emit()
}
