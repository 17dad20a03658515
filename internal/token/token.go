package token

import (
	"prim/internal/source"
)

// Token represents a single source token with its location and trivia.
//
// Leading trivia starts at the line break after the previous token (that
// break included) and runs to the token text. Trailing trivia runs from the
// token text up to, but not including, the next line break. The EOF token
// carries everything after the last real token as leading trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsWord reports whether the token is an identifier or keyword.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsLiteral reports whether the token is a numeric, string, or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is a delimiter, punctuation, or operator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LParen, RParen, LBracket, RBracket, Semicolon, Punct:
		return true
	default:
		return false
	}
}

// IsOpenDelim reports whether the token opens a bracketed region.
func (t Token) IsOpenDelim() bool {
	switch t.Kind {
	case LBrace, LParen, LBracket:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether the token closes a bracketed region.
func (t Token) IsCloseDelim() bool {
	switch t.Kind {
	case RBrace, RParen, RBracket:
		return true
	default:
		return false
	}
}

// WithLeading returns a copy of the token with a replaced leading list.
func (t Token) WithLeading(leading []Trivia) Token {
	t.Leading = leading
	return t
}

// WithTrailing returns a copy of the token with a replaced trailing list.
func (t Token) WithTrailing(trailing []Trivia) Token {
	t.Trailing = trailing
	return t
}
