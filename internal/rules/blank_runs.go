package rules

import (
	"fmt"

	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/source"
	"prim/internal/token"
)

// TooManyBlankLines flags runs of consecutive blank lines longer than the
// configured limit, anywhere in the file.
type TooManyBlankLines struct{}

func (TooManyBlankLines) Code() diag.Code { return diag.StyleTooManyBlankLines }
func (TooManyBlankLines) Name() string    { return "too-many-blank-lines" }

func (TooManyBlankLines) Check(ctx *Ctx) {
	limit := ctx.Config.MaxBlankLines
	if limit < 1 {
		limit = 1
	}
	w := blankRunWalker{ctx: ctx, limit: limit, base: 1}
	for _, tok := range ctx.Tokens {
		for _, tv := range tok.Leading {
			w.trivium(tv)
		}
		if !tok.IsEOF() {
			w.content()
		}
		for _, tv := range tok.Trailing {
			w.trivium(tv)
		}
	}
	w.flush()
}

// blankRunWalker accumulates the terminators of the current blank run while
// scanning the stream in file order. base is 1 when the run opens at the
// start of the file or right after a conditional directive: there the first
// terminator already closes an empty line, after ordinary content it closes
// the content's own line.
type blankRunWalker struct {
	ctx   *Ctx
	limit int
	run   []token.Trivia
	base  int
}

func (w *blankRunWalker) trivium(tv token.Trivia) {
	switch k := tv.Kind; {
	case k.IsWhitespace():
		// Горизонтальный пробел пустую строку не разрывает.
	case k.IsEndOfLine():
		w.run = append(w.run, tv)
	case k.EmbedsTerminator():
		w.flush()
		w.base = 1
	default:
		w.content()
	}
}

func (w *blankRunWalker) content() {
	w.flush()
	w.base = 0
}

func (w *blankRunWalker) flush() {
	k := len(w.run)
	if k == 0 {
		return
	}
	blanks := w.base + k - 1
	if blanks <= w.limit {
		w.run = w.run[:0]
		return
	}

	// Лишние строки срезаются с конца разбега: от конца последнего
	// остающегося терминатора до конца последнего в разбеге.
	excess := blanks - w.limit
	keepLast := w.run[k-excess-1]
	last := w.run[k-1]
	sp := source.Span{File: last.Span.File, Start: keepLast.Span.End, End: last.Span.End}

	del := fix.DeleteSpan("remove excess blank lines", sp, w.ctx.guard(sp))
	diag.ReportWarning(w.ctx.Reporter, diag.StyleTooManyBlankLines, sp,
		fmt.Sprintf("%d consecutive blank lines, limit is %d", blanks, w.limit)).
		WithFixSuggestion(del).
		Emit()
	w.run = w.run[:0]
}
