package trivia

import (
	"fmt"

	"prim/internal/token"
)

// Containing builds the full trivia run between two tokens around tv: the
// owning token's trailing list concatenated with the next token's leading
// list when tv is trailing, or the previous token's trailing list with the
// owner's leading list when tv is leading. It returns the combined list and
// tv's index within it.
//
// owner is the position of the owning token in tokens. Trivia identity is
// value identity; spans make every trivium in a stream distinct. Passing a
// trivium the owner does not carry is a bug in the caller and panics.
func Containing(tokens []token.Token, owner int, tv token.Trivia) ([]token.Trivia, int) {
	tok := tokens[owner]

	for i := range tok.Trailing {
		if tok.Trailing[i] == tv {
			var next []token.Trivia
			if owner+1 < len(tokens) {
				next = tokens[owner+1].Leading
			}
			return concat(tok.Trailing, next), i
		}
	}
	for j := range tok.Leading {
		if tok.Leading[j] == tv {
			var prev []token.Trivia
			if owner > 0 {
				prev = tokens[owner-1].Trailing
			}
			return concat(prev, tok.Leading), len(prev) + j
		}
	}

	panic(fmt.Sprintf("trivia: %s trivium at %s not owned by token at %s", tv.Kind, tv.Span, tok.Span))
}

func concat(a, b []token.Trivia) []token.Trivia {
	out := make([]token.Trivia, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
