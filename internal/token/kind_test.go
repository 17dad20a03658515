package token_test

import (
	"testing"

	"prim/internal/source"
	"prim/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.Number, token.StringLit, token.CharLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Word, token.LBrace, token.Punct, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	punct := []token.Kind{
		token.LBrace, token.RBrace, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.Semicolon, token.Punct,
	}
	for _, k := range punct {
		if !tok(k).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	non := []token.Kind{token.Word, token.Number, token.EOF, token.Invalid}
	for _, k := range non {
		if tok(k).IsPunct() {
			t.Fatalf("%v must NOT be punct", k)
		}
	}
}

func TestDelimPredicates(t *testing.T) {
	open := []token.Kind{token.LBrace, token.LParen, token.LBracket}
	for _, k := range open {
		if !tok(k).IsOpenDelim() {
			t.Fatalf("%v should open a delimited region", k)
		}
		if tok(k).IsCloseDelim() {
			t.Fatalf("%v must NOT close a delimited region", k)
		}
	}
	closed := []token.Kind{token.RBrace, token.RParen, token.RBracket}
	for _, k := range closed {
		if !tok(k).IsCloseDelim() {
			t.Fatalf("%v should close a delimited region", k)
		}
		if tok(k).IsOpenDelim() {
			t.Fatalf("%v must NOT open a delimited region", k)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.Invalid, "Invalid"},
		{token.EOF, "EOF"},
		{token.Word, "Word"},
		{token.StringLit, "StringLit"},
		{token.Punct, "Punct"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
