// Package token defines lexical token kinds and trivia for prim's layout analysis.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Trailing trivia never contains a line break: the first newline after a
//     token opens the next token's leading trivia.
//   - One TriviaNewline per line terminator; newline runs are never coalesced.
//   - Conditional directives (#if/#elif/#else/#endif) embed their terminator
//     and no TriviaNewline follows them; other # lines do not embed it.
//   - Concatenating leading text + token text + trailing text across the
//     stream reproduces the file content exactly.
package token
