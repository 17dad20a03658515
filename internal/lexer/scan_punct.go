package lexer

import (
	"prim/internal/diag"
	"prim/internal/token"
)

// Структурные знаки получают собственные Kind: по ним работают правила
// раскладки. Остальные операторы жадно склеиваются в один Punct, различать
// их раскладке незачем. Run обрезается перед началом комментария.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	ch := lx.cursor.Peek()
	switch ch {
	case '{':
		lx.cursor.Bump()
		return emit(token.LBrace)
	case '}':
		lx.cursor.Bump()
		return emit(token.RBrace)
	case '(':
		lx.cursor.Bump()
		return emit(token.LParen)
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen)
	case '[':
		lx.cursor.Bump()
		return emit(token.LBracket)
	case ']':
		lx.cursor.Bump()
		return emit(token.RBracket)
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon)
	case '#':
		// '#' не в начале строки — не директива, одиночный знак
		lx.cursor.Bump()
		return emit(token.Punct)
	}

	if ch == '/' || isPunctRunByte(ch) {
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b == '/' {
				if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == '/' || b1 == '*') {
					break // дальше начинается комментарий
				}
				lx.cursor.Bump()
				continue
			}
			if !isPunctRunByte(b) {
				break
			}
			lx.cursor.Bump()
		}
		return emit(token.Punct)
	}

	// неизвестный символ
	if ch >= utf8RuneSelf {
		lx.bumpRune()
	} else {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
