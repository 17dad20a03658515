package token

import "prim/internal/source"

//go:generate stringer -type=TriviaKind -trimprefix=Trivia

// TriviaKind classifies a single non-semantic span.
type TriviaKind uint8

const (
	// TriviaSpace is a run of horizontal whitespace (spaces and tabs).
	TriviaSpace TriviaKind = iota
	// TriviaNewline is exactly one line terminator. Runs of blank lines are
	// kept as individual trivia so line structure survives analysis.
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocComment is a /// line; content to the layout rules, same as
	// any other comment.
	TriviaDocComment
	// TriviaDirectiveIf..TriviaDirectiveEndif are conditional-compilation
	// markers (#if/#elif/#else/#endif). Each embeds its own line terminator:
	// the trivium text ends the line and no TriviaNewline follows it.
	TriviaDirectiveIf
	TriviaDirectiveElif
	TriviaDirectiveElse
	TriviaDirectiveEndif
	// TriviaDirectiveOther is any other # line (#include, #define, #pragma).
	// It does NOT embed its terminator and behaves like a comment in the
	// layout algorithms.
	TriviaDirectiveOther
)

// IsWhitespace reports whether the kind is a horizontal whitespace run.
func (k TriviaKind) IsWhitespace() bool { return k == TriviaSpace }

// IsEndOfLine reports whether the kind is a line terminator.
func (k TriviaKind) IsEndOfLine() bool { return k == TriviaNewline }

// IsDirective reports whether the kind is one of the four
// conditional-compilation markers. TriviaDirectiveOther is not one: it is
// plain content as far as blank-line analysis is concerned.
func (k TriviaKind) IsDirective() bool {
	switch k {
	case TriviaDirectiveIf, TriviaDirectiveElif, TriviaDirectiveElse, TriviaDirectiveEndif:
		return true
	default:
		return false
	}
}

// IsComment reports whether the kind is any comment form.
func (k TriviaKind) IsComment() bool {
	switch k {
	case TriviaLineComment, TriviaBlockComment, TriviaDocComment:
		return true
	default:
		return false
	}
}

// EmbedsTerminator reports whether the trivium text ends its line without a
// separate TriviaNewline after it.
func (k TriviaKind) EmbedsTerminator() bool { return k.IsDirective() }

// Trivia is one non-semantic span: whitespace, a line break, a comment, or a
// preprocessor line. Values are immutable; mutations build new slices.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
