// Package rules implements the layout checks prim runs over a token stream.
//
// Every rule reads the trivia attached to tokens, never the raw bytes behind
// them, so findings and fixes stay in byte-offset agreement with the lexer.
// Rules report through diag.Reporter and attach ready-to-apply fixes with
// old-text guards taken from the file content.
package rules

import (
	"fmt"

	"prim/internal/diag"
	"prim/internal/source"
	"prim/internal/token"
)

// Rule is one layout check. Code ties the rule to its diagnostic code, Name
// is the kebab-case identifier used in prim.toml.
type Rule interface {
	Code() diag.Code
	Name() string
	Check(ctx *Ctx)
}

// Config carries the knobs rules read. The driver fills it from the project
// manifest; MaxBlankLines is at least 1.
type Config struct {
	MaxBlankLines       int
	RequireFinalNewline bool
}

// DefaultConfig mirrors the manifest defaults.
func DefaultConfig() Config {
	return Config{
		MaxBlankLines:       2,
		RequireFinalNewline: true,
	}
}

// Ctx is one file's worth of input for a rule run. Tokens is the full stream
// for File including the trailing EOF token.
type Ctx struct {
	File     *source.File
	Tokens   []token.Token
	Config   Config
	Reporter diag.Reporter
}

// guard returns the text the span covers, used as the old-text guard on
// generated edits.
func (c *Ctx) guard(sp source.Span) string {
	return sp.Text(c.File)
}

// eof returns the trailing EOF token. The lexer always emits one.
func (c *Ctx) eof() token.Token {
	return c.Tokens[len(c.Tokens)-1]
}

// spanBetween stretches a span over a trivia range, first and last inclusive.
func spanBetween(first, last token.Trivia) source.Span {
	return source.Span{
		File:  first.Span.File,
		Start: first.Span.Start,
		End:   last.Span.End,
	}
}

// removedRun locates the sub-slice a mutator dropped from old to produce
// now. Blank-line stripping removes one contiguous run, so the first
// disagreement and the length delta pin it exactly. ok is false when nothing
// was removed.
func removedRun(old, now []token.Trivia) ([]token.Trivia, bool) {
	dropped := len(old) - len(now)
	if dropped <= 0 {
		return nil, false
	}
	k := 0
	for k < len(now) && old[k] == now[k] {
		k++
	}
	return old[k : k+dropped], true
}

// countBreaks counts the line terminators in the list.
func countBreaks(list []token.Trivia) int {
	n := 0
	for _, tv := range list {
		if tv.Kind.IsEndOfLine() {
			n++
		}
	}
	return n
}

// blankLinesNoun renders a count with its noun, "1 blank line" style.
func blankLinesNoun(n int) string {
	if n == 1 {
		return "1 blank line"
	}
	return fmt.Sprintf("%d blank lines", n)
}
