package main

import (
	"fmt"
	"os"

	"prim/internal/diag"
	"prim/internal/lexer"
	"prim/internal/rules"
	"prim/internal/source"
	"prim/internal/token"
)

// Одноразовый отладочный дамп: показывает, к какому токену прилипла тривия
// и какие диагностики правила выдают на корпусном примере.
func main() {
	file := "corpus/samples/messy.c"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(file)
	if err != nil {
		fmt.Printf("load error: %v\n", err)
		os.Exit(1)
	}
	f := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(f, lexer.Options{Reporter: reporter})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			break
		}
	}

	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		fmt.Printf("%d:%d %v %q\n", start.Line, start.Col, tok.Kind, tok.Text)
		for _, tr := range tok.Leading {
			fmt.Printf("    lead %v %q\n", tr.Kind, tr.Text)
		}
		for _, tr := range tok.Trailing {
			fmt.Printf("    trail %v %q\n", tr.Kind, tr.Text)
		}
	}

	ctx := &rules.Ctx{File: f, Tokens: tokens, Config: rules.DefaultConfig(), Reporter: reporter}
	for _, rule := range rules.Default().Rules() {
		rule.Check(ctx)
	}
	bag.Sort()

	fmt.Printf("\n%d diagnostics\n", bag.Len())
	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		fmt.Printf("%s %d:%d-%d:%d %s (%d fixes)\n", d.Code.ID(), start.Line, start.Col, end.Line, end.Col, d.Message, len(d.Fixes))
	}
}
