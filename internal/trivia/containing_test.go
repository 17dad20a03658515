package trivia_test

import (
	"testing"

	"prim/internal/source"
	"prim/internal/token"
	"prim/internal/trivia"
)

// at создаёт тривию с реальным спаном, чтобы значения были различимы.
func at(k token.TriviaKind, text string, start uint32) token.Trivia {
	return token.Trivia{
		Kind: k,
		Span: source.Span{Start: start, End: start + uint32(len(text))},
		Text: text,
	}
}

func containingFixture() []token.Token {
	return []token.Token{
		{
			Kind:     token.Word,
			Text:     "a",
			Leading:  []token.Trivia{at(token.TriviaSpace, "  ", 0)},
			Trailing: []token.Trivia{at(token.TriviaSpace, " ", 3), at(token.TriviaLineComment, "// gap", 4)},
		},
		{
			Kind:     token.Word,
			Text:     "b",
			Leading:  []token.Trivia{at(token.TriviaNewline, "\n", 10)},
			Trailing: []token.Trivia{at(token.TriviaSpace, " ", 12)},
		},
		{
			Kind:     token.Word,
			Text:     "c",
			Leading:  []token.Trivia{at(token.TriviaNewline, "\n", 13), at(token.TriviaSpace, "    ", 14)},
			Trailing: []token.Trivia{at(token.TriviaSpace, " ", 19)},
		},
	}
}

func TestContainingTrailing(t *testing.T) {
	tokens := containingFixture()
	tv := tokens[1].Trailing[0]

	list, idx := trivia.Containing(tokens, 1, tv)
	expectList(t, list, []token.Trivia{
		at(token.TriviaSpace, " ", 12),
		at(token.TriviaNewline, "\n", 13),
		at(token.TriviaSpace, "    ", 14),
	})
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
	if list[idx] != tv {
		t.Fatalf("list[%d] must be the argument trivium", idx)
	}
}

func TestContainingLeading(t *testing.T) {
	tokens := containingFixture()
	tv := tokens[1].Leading[0]

	list, idx := trivia.Containing(tokens, 1, tv)
	expectList(t, list, []token.Trivia{
		at(token.TriviaSpace, " ", 3),
		at(token.TriviaLineComment, "// gap", 4),
		at(token.TriviaNewline, "\n", 10),
	})
	if idx != 2 {
		t.Fatalf("index = %d, want 2", idx)
	}
	if list[idx] != tv {
		t.Fatalf("list[%d] must be the argument trivium", idx)
	}
}

func TestContainingAtStreamEdges(t *testing.T) {
	tokens := containingFixture()

	// У первого токена нет предыдущего: слева пусто.
	first := tokens[0].Leading[0]
	list, idx := trivia.Containing(tokens, 0, first)
	expectList(t, list, tokens[0].Leading)
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}

	// У последнего нет следующего: справа пусто.
	last := tokens[2].Trailing[0]
	list, idx = trivia.Containing(tokens, 2, last)
	expectList(t, list, tokens[2].Trailing)
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
}

func TestContainingForeignTriviumPanics(t *testing.T) {
	tokens := containingFixture()
	defer func() {
		if recover() == nil {
			t.Fatalf("foreign trivium must panic")
		}
	}()
	trivia.Containing(tokens, 1, at(token.TriviaSpace, "??", 99))
}

func TestContainingDoesNotAliasInput(t *testing.T) {
	tokens := containingFixture()
	tv := tokens[1].Trailing[0]

	list, _ := trivia.Containing(tokens, 1, tv)
	list[0] = at(token.TriviaBlockComment, "/* x */", 50)

	if tokens[1].Trailing[0] != tv {
		t.Fatalf("mutating the combined list must not touch the stream")
	}
}
