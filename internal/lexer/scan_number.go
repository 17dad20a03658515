package lexer

import (
	"prim/internal/diag"
	"prim/internal/token"
)

// Поддержка: 0, 123, 010, 0b101, 0x1F, 1.0, .5, 1e-3, 0x1.8p+4, 1'000'000,
// суффиксы u/l/f и их комбинации. Kind всегда Number: раскладке не важно,
// целое это или дробное. Неверные формы — репорт в opts.Reporter, токен по
// возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	hex := false

	// ведущая точка — формат ".digits", целой части нет
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		goto exponent
	}

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			hex = true
			lx.eatDigits(isHex)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.eatDigits(isBin)
		default:
			// "0" сам по себе; восьмеричные 0777 дальше общим путём
		}
	}

	if !hex {
		lx.eatDigits(isDec)
	}

	// дробная часть; у hex-чисел дробь тоже hex: 0x1.8p3
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if hex {
			lx.eatDigits(isHex)
		} else {
			lx.eatDigits(isDec)
		}
	}

exponent:
	// десятичная экспонента e/E; у hex — двоичная p/P ('e' там уже цифра)
	if b := lx.cursor.Peek(); (!hex && (b == 'e' || b == 'E')) || (hex && (b == 'p' || b == 'P')) {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.eatDigits(isDec)
	}

	// суффиксы (u, l, f, ULL, ...) и прочий pp-number хвост остаются в Text
	for isWordContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// eatDigits съедает цифры valid вместе с разделителями разрядов:
// '_' свободно, '\'' (C++14/C23) — только если сразу за ним идёт цифра,
// иначе это начало символьного литерала.
func (lx *Lexer) eatDigits(valid func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if valid(b) || b == '_' {
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			if _, b1, ok := lx.cursor.Peek2(); ok && valid(b1) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		break
	}
}
