package rules

import (
	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/token"
	"prim/internal/trivia"
)

// TrailingWhitespace flags horizontal whitespace sitting directly before a
// line break or before the end of the file.
type TrailingWhitespace struct{}

func (TrailingWhitespace) Code() diag.Code { return diag.StyleTrailingWhitespace }
func (TrailingWhitespace) Name() string    { return "trailing-whitespace" }

func (TrailingWhitespace) Check(ctx *Ctx) {
	last := len(ctx.Tokens) - 1
	for i, tok := range ctx.Tokens {
		// Лидирующий список обрывается на тексте владельца, хвостовой — на
		// тексте следующего токена; у EOF текста нет, там конец файла.
		for _, tv := range tok.Leading {
			checkSpaceRun(ctx, i, tv, i == last)
		}
		for _, tv := range tok.Trailing {
			checkSpaceRun(ctx, i, tv, i+1 == last)
		}
	}
}

func checkSpaceRun(ctx *Ctx, owner int, tv token.Trivia, endsAtEOF bool) {
	if !tv.Kind.IsWhitespace() {
		return
	}
	run, idx := trivia.Containing(ctx.Tokens, owner, tv)
	if next := idx + 1; next < len(run) {
		if !run[next].Kind.IsEndOfLine() {
			return
		}
	} else if !endsAtEOF {
		return
	}
	del := fix.DeleteSpan("remove trailing whitespace", tv.Span, ctx.guard(tv.Span))
	diag.ReportWarning(ctx.Reporter, diag.StyleTrailingWhitespace, tv.Span, "trailing whitespace").
		WithFixSuggestion(del).
		Emit()
}
