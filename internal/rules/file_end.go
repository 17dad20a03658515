package rules

import (
	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/trivia"
)

// FileEndBlankLines flags blank lines between the last line that carries
// anything and the end of the file.
type FileEndBlankLines struct{}

func (FileEndBlankLines) Code() diag.Code { return diag.StyleFileEndBlankLines }
func (FileEndBlankLines) Name() string    { return "blank-lines-at-file-end" }

func (FileEndBlankLines) Check(ctx *Ctx) {
	rest := ctx.eof().Leading
	if len(ctx.Tokens) > 1 {
		// Первый элемент — терминатор последней строки с токенами.
		if len(rest) == 0 {
			return
		}
		rest = rest[1:]
	}
	cut, ok := trivia.TrailingWhitespaceStart(rest)
	if !ok {
		return
	}
	suffix := rest[cut:]
	n := countBreaks(suffix)
	if n == 0 {
		// Чистый пробел перед концом файла — это trailing whitespace.
		return
	}
	sp := spanBetween(suffix[0], suffix[len(suffix)-1])
	del := fix.DeleteSpan("remove blank lines at end of file", sp, ctx.guard(sp))
	diag.ReportWarning(ctx.Reporter, diag.StyleFileEndBlankLines, sp,
		blankLinesNoun(n)+" at end of file").
		WithFixSuggestion(del).
		Emit()
}
