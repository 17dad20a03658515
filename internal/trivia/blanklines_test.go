package trivia_test

import (
	"testing"

	"prim/internal/token"
	"prim/internal/trivia"
)

func TestStripTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name string
		list []token.Trivia
		want []token.Trivia
	}{
		{"empty", nil, nil},
		{"ends in content", []token.Trivia{ws(" "), comment("// c")}, []token.Trivia{ws(" "), comment("// c")}},
		{"trailing space", []token.Trivia{comment("// c"), ws(" ")}, []token.Trivia{comment("// c")}},
		{"space and break", []token.Trivia{comment("// c"), ws(" "), eol()}, []token.Trivia{comment("// c")}},
		{"terminator survives", []token.Trivia{comment("// c"), eol()}, []token.Trivia{comment("// c"), eol()}},
		{"blank line after comment", []token.Trivia{comment("// c"), eol(), ws(" ")}, []token.Trivia{comment("// c"), eol()}},
		{"break after directive goes", []token.Trivia{directive("#if A"), eol()}, []token.Trivia{directive("#if A")}},
		{"whitespace only", []token.Trivia{ws(" "), eol(), ws("  ")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trivia.StripTrailingWhitespace(tt.list)
			expectList(t, got, tt.want)

			// Повторное применение ничего не меняет.
			again := trivia.StripTrailingWhitespace(got)
			expectList(t, again, tt.want)
		})
	}
}

func TestStripTrailingWhitespaceKeepsInput(t *testing.T) {
	list := []token.Trivia{comment("// c"), ws(" "), eol()}
	_ = trivia.StripTrailingWhitespace(list)
	expectList(t, list, []token.Trivia{comment("// c"), ws(" "), eol()})
}

func TestStripLeadingWhitespace(t *testing.T) {
	tests := []struct {
		name string
		list []token.Trivia
		want []token.Trivia
	}{
		{"empty", nil, nil},
		{"whitespace only", []token.Trivia{ws(" "), eol()}, nil},
		{"content first", []token.Trivia{comment("// c"), ws(" ")}, []token.Trivia{comment("// c"), ws(" ")}},
		{"blank prefix", []token.Trivia{ws(" "), eol(), comment("// c"), ws(" ")}, []token.Trivia{comment("// c"), ws(" ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trivia.StripLeadingWhitespace(tt.list)
			expectList(t, got, tt.want)

			// Префикс плюс результат восстанавливают исходный список.
			rebuilt := append(append([]token.Trivia(nil), tt.list[:len(tt.list)-len(got)]...), got...)
			expectList(t, rebuilt, tt.list)
		})
	}
}

func TestHasBlankLines(t *testing.T) {
	tests := []struct {
		name string
		list []token.Trivia
		want bool
	}{
		{"empty", nil, false},
		{"indent only", []token.Trivia{ws(" ")}, false},
		{"break then indent", []token.Trivia{eol(), ws("  ")}, true},
		{"blank line then indent", []token.Trivia{eol(), eol(), ws("  ")}, true},
		{"two blank lines then indent", []token.Trivia{ws(" "), eol(), eol(), ws("    ")}, true},
		{"comment line directly above", []token.Trivia{comment("// c"), eol(), ws("  ")}, false},
		{"comment with trailing space above", []token.Trivia{comment("// c"), ws(" "), eol(), ws("  ")}, false},
		{"blank line after comment", []token.Trivia{comment("// c"), eol(), eol(), ws("  ")}, true},
		{"directive line directly above", []token.Trivia{eol(), directive("#if A"), ws("  ")}, false},
		{"directive with no indent after", []token.Trivia{directive("#if A"), ws(" ")}, false},
		{"blank line after directive", []token.Trivia{directive("#if A"), eol(), ws("  ")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trivia.HasBlankLines(tt.list); got != tt.want {
				t.Fatalf("HasBlankLines(%s) = %v, want %v", listString(tt.list), got, tt.want)
			}
		})
	}
}

func TestStripBlankLines(t *testing.T) {
	tests := []struct {
		name string
		list []token.Trivia
		want []token.Trivia
	}{
		{"empty", nil, nil},
		{"indent only", []token.Trivia{ws(" ")}, []token.Trivia{ws(" ")}},
		{"no blank above", []token.Trivia{comment("// c"), eol(), ws("  ")}, []token.Trivia{comment("// c"), eol(), ws("  ")}},
		{"blank first line", []token.Trivia{eol(), ws("  ")}, []token.Trivia{ws("  ")}},
		{"single break", []token.Trivia{eol()}, nil},
		{"two blank first lines", []token.Trivia{eol(), eol(), ws("  ")}, []token.Trivia{ws("  ")}},
		{
			"blank line after comment",
			[]token.Trivia{comment("// c"), eol(), eol(), ws("  ")},
			[]token.Trivia{comment("// c"), eol(), ws("  ")},
		},
		{
			"comment keeps its own trailing space",
			[]token.Trivia{comment("// c"), ws(" "), eol(), eol(), eol(), ws("  ")},
			[]token.Trivia{comment("// c"), ws(" "), eol(), ws("  ")},
		},
		{
			"blank before directive goes",
			[]token.Trivia{eol(), directive("#if A"), eol(), ws("  ")},
			[]token.Trivia{directive("#if A"), eol(), ws("  ")},
		},
		{
			"two blanks before directive go",
			[]token.Trivia{eol(), eol(), directive("#if A"), eol(), ws("  ")},
			[]token.Trivia{directive("#if A"), eol(), ws("  ")},
		},
		{
			"directive directly above stays put",
			[]token.Trivia{eol(), directive("#if A"), ws("  ")},
			[]token.Trivia{eol(), directive("#if A"), ws("  ")},
		},
		{
			"everything from the directive on stays put",
			[]token.Trivia{directive("#if A"), eol(), eol(), ws("  ")},
			[]token.Trivia{directive("#if A"), eol(), eol(), ws("  ")},
		},
		{
			"comment above the directive anchors the upper region",
			[]token.Trivia{comment("// c"), eol(), eol(), directive("#if A"), eol(), ws("  ")},
			[]token.Trivia{comment("// c"), eol(), directive("#if A"), eol(), ws("  ")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trivia.StripBlankLines(tt.list)
			expectList(t, got, tt.want)

			// Директивы и терминаторы после содержимого не удаляются.
			for i, tv := range tt.list {
				if tv.Kind.IsDirective() && !containsTrivium(got, tv) {
					t.Fatalf("directive at %d was deleted", i)
				}
				if i > 0 && tv.Kind.IsEndOfLine() {
					prev := tt.list[i-1].Kind
					if !prev.IsWhitespace() && !prev.IsEndOfLine() && !containsTrivium(got, tv) {
						t.Fatalf("terminator at %d follows content and was deleted", i)
					}
				}
			}
		})
	}
}

func containsTrivium(list []token.Trivia, tv token.Trivia) bool {
	for _, got := range list {
		if got.Kind == tv.Kind && got.Text == tv.Text {
			return true
		}
	}
	return false
}

func TestWithoutLeadingBlankLines(t *testing.T) {
	trail := []token.Trivia{ws(" "), comment("// after")}
	tok := token.Token{
		Kind:     token.Word,
		Text:     "int",
		Leading:  []token.Trivia{eol(), eol(), ws("    ")},
		Trailing: trail,
	}

	out := trivia.WithoutLeadingBlankLines(tok)
	expectList(t, out.Leading, []token.Trivia{ws("    ")})
	if out.Text != "int" || out.Kind != token.Word {
		t.Fatalf("token text must be untouched, got %q", out.Text)
	}
	expectList(t, out.Trailing, trail)

	// Исходный токен не изменился.
	expectList(t, tok.Leading, []token.Trivia{eol(), eol(), ws("    ")})

	// Без пустых строк токен возвращается как есть.
	clean := token.Token{Kind: token.Word, Text: "int", Leading: []token.Trivia{ws("  ")}}
	if got := trivia.WithoutLeadingBlankLines(clean); len(got.Leading) != 1 {
		t.Fatalf("clean token must come back unchanged, got %s", listString(got.Leading))
	}
}
