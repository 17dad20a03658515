package testkit

import (
	"strings"
	"testing"

	"prim/internal/source"
	"prim/internal/token"
)

func virtualFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("stream.c", []byte(content))
	return fs.Get(id)
}

func TestCheckStreamInvariantsAcceptsValidStream(t *testing.T) {
	file := virtualFile(t, "x ;\n")
	tokens := []token.Token{
		{
			Kind: token.Word,
			Span: source.Span{File: file.ID, Start: 0, End: 1},
			Text: "x",
			Trailing: []token.Trivia{
				{Kind: token.TriviaSpace, Span: source.Span{File: file.ID, Start: 1, End: 2}, Text: " "},
			},
		},
		{
			Kind: token.Semicolon,
			Span: source.Span{File: file.ID, Start: 2, End: 3},
			Text: ";",
		},
		{
			Kind: token.EOF,
			Span: source.Span{File: file.ID, Start: 4, End: 4},
			Leading: []token.Trivia{
				{Kind: token.TriviaNewline, Span: source.Span{File: file.ID, Start: 3, End: 4}, Text: "\n"},
			},
		},
	}
	if err := CheckStreamInvariants(tokens, file); err != nil {
		t.Fatalf("valid stream rejected: %v", err)
	}
}

func TestCheckStreamInvariantsRejectsBrokenStreams(t *testing.T) {
	file := virtualFile(t, "x\n")
	eof := func(start uint32, lead ...token.Trivia) token.Token {
		return token.Token{Kind: token.EOF, Span: source.Span{File: file.ID, Start: start, End: start}, Leading: lead}
	}
	word := token.Token{Kind: token.Word, Span: source.Span{File: file.ID, Start: 0, End: 1}, Text: "x"}
	nl := token.Trivia{Kind: token.TriviaNewline, Span: source.Span{File: file.ID, Start: 1, End: 2}, Text: "\n"}

	tests := []struct {
		name    string
		tokens  []token.Token
		wantErr string
	}{
		{"empty stream", nil, "empty"},
		{"missing EOF", []token.Token{word}, "does not end with EOF"},
		{"gap before EOF", []token.Token{word, eof(2)}, "starts at"},
		{"text mismatch", []token.Token{
			{Kind: token.Word, Span: source.Span{File: file.ID, Start: 0, End: 1}, Text: "y"},
			eof(1, nl),
		}, "differs from content"},
		{"uncovered tail", []token.Token{
			{Kind: token.Word, Span: source.Span{File: file.ID, Start: 0, End: 1}, Text: "x",
				Trailing: nil},
			eof(1),
		}, "covers 1 of 2"},
		{"newline in trailing", []token.Token{
			{Kind: token.Word, Span: source.Span{File: file.ID, Start: 0, End: 1}, Text: "x",
				Trailing: []token.Trivia{nl}},
			eof(2),
		}, "line break"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStreamInvariants(tt.tokens, file)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
