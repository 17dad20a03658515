// Package testkit holds structural checks shared by lexer and driver tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"prim/internal/source"
	"prim/internal/token"
)

// CheckStreamInvariants verifies the lexer's structural contract over a full
// token stream:
//  1. the stream is non-empty and ends with exactly one EOF token
//  2. trivia and token spans tile the file: each starts where the previous
//     one ended, text matches the bytes the span covers
//  3. trailing trivia never carries a line break or a conditional directive
//  4. concatenating leading + token + trailing text over the stream
//     reproduces the file content losslessly
func CheckStreamInvariants(tokens []token.Token, file *source.File) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	last := tokens[len(tokens)-1]
	if !last.IsEOF() {
		return fmt.Errorf("stream does not end with EOF, got %v", last.Kind)
	}
	for i := range tokens[:len(tokens)-1] {
		if tokens[i].IsEOF() {
			return fmt.Errorf("EOF token at position %d before end of stream", i)
		}
	}
	if len(last.Trailing) != 0 {
		return fmt.Errorf("EOF token carries trailing trivia")
	}

	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	cursor := uint32(0)
	for i, tok := range tokens {
		for _, tv := range tok.Leading {
			if err := checkPiece(file, lenContent, cursor, tv.Span, tv.Text, fmt.Sprintf("leading trivia %v of token %d", tv.Kind, i)); err != nil {
				return err
			}
			cursor = tv.Span.End
		}
		if err := checkPiece(file, lenContent, cursor, tok.Span, tok.Text, fmt.Sprintf("token %d (%v)", i, tok.Kind)); err != nil {
			return err
		}
		cursor = tok.Span.End
		for _, tv := range tok.Trailing {
			if tv.Kind.IsEndOfLine() {
				return fmt.Errorf("trailing trivia of token %d contains a line break", i)
			}
			if tv.Kind.EmbedsTerminator() {
				return fmt.Errorf("trailing trivia of token %d contains a conditional directive", i)
			}
			if err := checkPiece(file, lenContent, cursor, tv.Span, tv.Text, fmt.Sprintf("trailing trivia %v of token %d", tv.Kind, i)); err != nil {
				return err
			}
			cursor = tv.Span.End
		}
	}

	if cursor != lenContent {
		return fmt.Errorf("stream covers %d of %d bytes", cursor, lenContent)
	}
	return nil
}

// checkPiece проверяет одно звено потока: спан начинается там, где
// закончился предыдущий, не выходит за файл и совпадает со своим текстом.
func checkPiece(file *source.File, lenContent, cursor uint32, sp source.Span, text string, what string) error {
	if sp.File != file.ID {
		return fmt.Errorf("%s points at file %d, want %d", what, sp.File, file.ID)
	}
	if sp.Start != cursor {
		return fmt.Errorf("%s starts at %d, previous piece ended at %d", what, sp.Start, cursor)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s has inverted span %d..%d", what, sp.Start, sp.End)
	}
	if sp.End > lenContent {
		return fmt.Errorf("%s ends at %d beyond content length %d", what, sp.End, lenContent)
	}
	if got := string(file.Content[sp.Start:sp.End]); got != text {
		return fmt.Errorf("%s text %q differs from content %q", what, text, got)
	}
	return nil
}
