package rules

import (
	"prim/internal/diag"
	"prim/internal/fix"
	"prim/internal/token"
	"prim/internal/trivia"
)

// BlankAfterOpenBrace flags blank lines between a `{` and the first line of
// the block body.
type BlankAfterOpenBrace struct{}

func (BlankAfterOpenBrace) Code() diag.Code { return diag.StyleBlankAfterOpenBrace }
func (BlankAfterOpenBrace) Name() string    { return "blank-line-after-open-brace" }

func (BlankAfterOpenBrace) Check(ctx *Ctx) {
	for i := 1; i < len(ctx.Tokens); i++ {
		if ctx.Tokens[i-1].Kind != token.LBrace {
			continue
		}
		run, ok := strippableLeadingBlanks(ctx.Tokens[i])
		if !ok {
			continue
		}
		sp := spanBetween(run[0], run[len(run)-1])
		del := fix.DeleteSpan("remove blank lines after '{'", sp, ctx.guard(sp))
		diag.ReportWarning(ctx.Reporter, diag.StyleBlankAfterOpenBrace, sp,
			blankLinesNoun(countBreaks(run))+" after '{'").
			WithFixSuggestion(del).
			Emit()
	}
}

// BlankBeforeCloseBrace flags blank lines between the last line of a block
// body and its `}`.
type BlankBeforeCloseBrace struct{}

func (BlankBeforeCloseBrace) Code() diag.Code { return diag.StyleBlankBeforeCloseBrace }
func (BlankBeforeCloseBrace) Name() string    { return "blank-line-before-close-brace" }

func (BlankBeforeCloseBrace) Check(ctx *Ctx) {
	for i := 1; i < len(ctx.Tokens); i++ {
		if ctx.Tokens[i].Kind != token.RBrace {
			continue
		}
		run, ok := strippableLeadingBlanks(ctx.Tokens[i])
		if !ok {
			continue
		}
		sp := spanBetween(run[0], run[len(run)-1])
		del := fix.DeleteSpan("remove blank lines before '}'", sp, ctx.guard(sp))
		diag.ReportWarning(ctx.Reporter, diag.StyleBlankBeforeCloseBrace, sp,
			blankLinesNoun(countBreaks(run))+" before '}'").
			WithFixSuggestion(del).
			Emit()
	}
}

// strippableLeadingBlanks finds the blank-line run the leading mutators
// would remove from the token's leading list. The list's first trivium is
// the previous line's terminator and stays out of the query. ok is false
// when there is nothing removable, including runs a conditional directive
// keeps in place.
func strippableLeadingBlanks(tok token.Token) ([]token.Trivia, bool) {
	if len(tok.Leading) == 0 {
		return nil, false
	}
	shifted := tok.WithLeading(tok.Leading[1:])
	if !trivia.HasLeadingBlankLines(shifted) {
		return nil, false
	}
	cleaned := trivia.WithoutLeadingBlankLines(shifted)
	return removedRun(shifted.Leading, cleaned.Leading)
}
