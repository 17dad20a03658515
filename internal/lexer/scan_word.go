package lexer

import (
	"prim/internal/token"
)

// scanWord сканирует идентификатор или ключевое слово: раскладке они
// неразличимы, всё — Word. Token.Text — ровно исходный срез.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()

	// Первый символ: ASCII fast-path или Unicode
	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isWordStartByte(byte(r)) {
			// fallback на пунктуацию
			return lx.scanPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isWordStartRune(r) {
			return lx.scanPunct()
		}
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if isWordContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r2, sz2 := lx.peekRune()
			if sz2 > 0 && isWordContinueRune(r2) {
				lx.bumpRune()
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Word,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
