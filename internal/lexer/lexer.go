package lexer

import (
	"prim/internal/diag"
	"prim/internal/source"
	"prim/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next возвращает следующий **значимый** токен с собранными Leading и
// Trailing. Leading начинается с перевода строки, закрывшего предыдущую
// строку; Trailing тянется до (не включая) следующего перевода строки.
// EOF-токен забирает весь хвост файла как Leading. После EOF всегда
// возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) collectLeadingTrivia() — набить lx.hold
	lx.collectLeadingTrivia()

	// 3) Если EOF → вернуть EOF; остатки trivia приклеиваем как Leading,
	//    иначе конкатенация токенов потеряет хвост файла
	if lx.cursor.EOF() {
		tok := token.Token{
			Kind:    token.EOF,
			Span:    lx.emptySpan(),
			Text:    "",
			Leading: lx.hold,
		}
		lx.hold = nil
		return tok
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isWordStartByte(ch):
		tok = lx.scanWord()

	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор → scanWord() разберётся
		tok = lx.scanWord()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		// . за которым цифра → scanNumber()
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanQuoted('"', token.StringLit, diag.LexUnterminatedString, "string")

	case ch == '\'':
		tok = lx.scanQuoted('\'', token.CharLit, diag.LexUnterminatedChar, "character")

	default:
		tok = lx.scanPunct()
	}

	if len(tok.Text) > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds length limit")
		tok.Kind = token.Invalid
		lx.cursor.SkipToEnd()
	}

	// 5) Приклеить Leading из hold и собрать Trailing до конца строки
	tok.Leading = lx.hold
	lx.hold = nil
	tok.Trailing = lx.collectTrailingTrivia()

	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
