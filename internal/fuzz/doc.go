
// Package fuzztests houses Go fuzz harnesses that exercise the prim analysis
// pipeline (source -> lexer -> rules -> fixes). Its goal is to smoke test
// robustness and guard against panics or invariant violations on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, правила и движок правок.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/rules, internal/fix,
// internal/diag, internal/testkit, corpus.

package fuzztests
