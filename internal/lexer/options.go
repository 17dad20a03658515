package lexer

import (
	"prim/internal/diag"
	"prim/internal/source"
)

// maxTokenLength ограничивает длину одного токена. Всё, что длиннее, почти
// наверняка минифицированный или сгенерированный текст, а не код для ревью.
const maxTokenLength = 1 << 16

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

// errLex репортит лексическую ошибку. Лексер только вызывает Reporter;
// форматирует diag внешний слой.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
