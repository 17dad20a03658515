package lexer

import (
	"prim/internal/diag"
	"prim/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ' и '\t' коалесцируются в один TriviaSpace
// - каждый '\n' — отдельный TriviaNewline (структура пустых строк важна,
//   НЕ коалесцируем)
// - //... до \n -> TriviaLineComment, ///... -> TriviaDocComment
// - /* ... */ -> TriviaBlockComment (если не закрыт — репорт и обрезаем на EOF)
// - # в начале строки -> директива; условные четыре съедают свой '\n'
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			lx.hold = append(lx.hold, lx.scanSpaceRun())
			continue
		}

		if b == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if tv, ok := lx.tryComment(); ok {
				lx.hold = append(lx.hold, tv)
				continue
			}
		}

		if b == '#' && lx.atDirectivePosition() {
			lx.hold = append(lx.hold, lx.scanDirective())
			continue
		}

		// нет больше trivia
		break
	}
}

// collectTrailingTrivia собирает trivia после текста токена до (не включая)
// первого перевода строки: этот перевод строки открывает leading следующего
// токена. Блочный комментарий — один trivium, даже если внутри него есть
// переводы строк.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			out = append(out, lx.scanSpaceRun())
			continue
		}

		if b == '/' {
			if tv, ok := lx.tryComment(); ok {
				out = append(out, tv)
				continue
			}
		}

		break
	}
	return out
}

// scanSpaceRun съедает горизонтальные пробелы одним trivium.
func (lx *Lexer) scanSpaceRun() token.Trivia {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{
		Kind: token.TriviaSpace,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// tryComment сканирует //, /// или /* ... */. Возвращает false, если '/' —
// не начало комментария (пусть сканируется как пунктуация).
func (lx *Lexer) tryComment() (token.Trivia, bool) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return token.Trivia{}, false
	}
	switch lx.cursor.Peek() {
	case '/': // "//" или "///"
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.TriviaDocComment
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Trivia{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true

	case '*': // "/* ... */", без вложенности
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		return token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true

	default:
		// это не комментарий — вернёмся, пусть сканируется как оператор '/'
		lx.cursor.Reset(start)
		return token.Trivia{}, false
	}
}

// atDirectivePosition: '#' считается директивой, только когда от начала
// строки до него одни пробелы.
func (lx *Lexer) atDirectivePosition() bool {
	for i := lx.cursor.Off; i > 0; i-- {
		switch lx.file.Content[i-1] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// scanDirective сканирует строку препроцессора начиная с '#'.
// #if/#ifdef/#ifndef, #elif/#elifdef/#elifndef, #else, #endif съедают и свой
// перевод строки: текст условной директивы сам закрывает строку. Остальные
// (#include, #define, #pragma, ...) заканчиваются перед '\n'.
func (lx *Lexer) scanDirective() token.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.Eat('#')
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	nameStart := lx.cursor.Off
	for {
		b := lx.cursor.Peek()
		if b < 'a' || b > 'z' {
			break
		}
		lx.cursor.Bump()
	}
	kind := directiveKind(string(lx.file.Content[nameStart:lx.cursor.Off]))

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if kind.IsDirective() {
		lx.cursor.Eat('\n')
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func directiveKind(name string) token.TriviaKind {
	switch name {
	case "if", "ifdef", "ifndef":
		return token.TriviaDirectiveIf
	case "elif", "elifdef", "elifndef":
		return token.TriviaDirectiveElif
	case "else":
		return token.TriviaDirectiveElse
	case "endif":
		return token.TriviaDirectiveEndif
	default:
		return token.TriviaDirectiveOther
	}
}
