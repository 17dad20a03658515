package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"prim/internal/diag"
	"prim/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPrettyPrinter(opts)
	for _, d := range bag.Items() {
		p.printDiagnostic(w, fs, d)
	}
}

type prettyPrinter struct {
	opts PrettyOpts

	sevError   *color.Color
	sevWarning *color.Color
	sevInfo    *color.Color
	code       *color.Color
	note       *color.Color
	fix        *color.Color
}

func newPrettyPrinter(opts PrettyOpts) *prettyPrinter {
	p := &prettyPrinter{
		opts:       opts,
		sevError:   color.New(color.FgRed, color.Bold),
		sevWarning: color.New(color.FgYellow, color.Bold),
		sevInfo:    color.New(color.FgCyan, color.Bold),
		code:       color.New(color.Bold),
		note:       color.New(color.FgBlue),
		fix:        color.New(color.FgGreen),
	}
	if !opts.Color {
		for _, c := range []*color.Color{p.sevError, p.sevWarning, p.sevInfo, p.code, p.note, p.fix} {
			c.DisableColor()
		}
	}
	return p
}

func (p *prettyPrinter) severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.sevError
	case diag.SevWarning:
		return p.sevWarning
	default:
		return p.sevInfo
	}
}

func (p *prettyPrinter) printDiagnostic(w io.Writer, fs *source.FileSet, d diag.Diagnostic) {
	f := fs.Get(d.Primary.File)
	startPos, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(f, fs, p.opts.PathMode),
		startPos.Line, startPos.Col,
		p.severityColor(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	p.printSnippet(w, fs, d.Primary, p.severityColor(d.Severity))

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			npos, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				p.note.Sprint("note:"),
				displayPath(nf, fs, p.opts.PathMode),
				npos.Line, npos.Col,
				note.Msg)
		}
	}

	if p.opts.ShowFixes && len(d.Fixes) > 0 {
		p.printFixes(w, fs, d.Fixes)
	}
}

// printSnippet печатает строку источника (плюс Context строк вокруг)
// и подчёркивание под спаном.
func (p *prettyPrinter) printSnippet(w io.Writer, fs *source.FileSet, span source.Span, marker *color.Color) {
	f := fs.Get(span.File)
	startPos, endPos := fs.Resolve(span)

	total := f.LineCount()
	if total == 0 || startPos.Line > total {
		return
	}

	ctx := uint32(0)
	if p.opts.Context > 0 {
		ctx = uint32(p.opts.Context)
	}

	first := uint32(1)
	if startPos.Line > ctx {
		first = startPos.Line - ctx
	}
	last := min(startPos.Line+ctx, total)

	gutter := len(strconv.Itoa(int(last)))
	for line := first; line <= last; line++ {
		text := f.GetLine(line)
		if p.opts.Width > 0 {
			text = runewidth.Truncate(text, int(p.opts.Width), "...")
		}
		fmt.Fprintf(w, "%*d | %s\n", gutter, line, text)
		if line == startPos.Line {
			p.printCaret(w, gutter, text, startPos, endPos, marker)
		}
	}
}

func (p *prettyPrinter) printCaret(w io.Writer, gutter int, text string, startPos, endPos source.LineCol, marker *color.Color) {
	prefixEnd := min(int(startPos.Col)-1, len(text))
	if prefixEnd < 0 {
		prefixEnd = 0
	}

	width := 0
	switch {
	case endPos.Line == startPos.Line && endPos.Col > startPos.Col:
		underlined := text[prefixEnd:min(int(endPos.Col)-1, len(text))]
		width = runewidth.StringWidth(underlined)
	case endPos.Line > startPos.Line:
		// спан уходит на следующие строки, подчёркиваем до конца строки
		width = runewidth.StringWidth(text[prefixEnd:])
	}
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "%*s | %s%s\n",
		gutter, "",
		caretPadding(text[:prefixEnd]),
		marker.Sprint("^"+strings.Repeat("~", width-1)))
}

// caretPadding строит отступ той же визуальной ширины, что prefix:
// табы сохраняются, остальные руны заменяются пробелами по их ширине.
func caretPadding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		for n := runewidth.RuneWidth(r); n > 0; n-- {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (p *prettyPrinter) printFixes(w io.Writer, fs *source.FileSet, fixes []diag.Fix) {
	ctx := diag.FixBuildContext{FileSet: fs}
	for i, f := range orderFixes(fixes) {
		resolved, err := f.Resolve(ctx)

		fmt.Fprintf(w, "  %s %s [%s, %s]",
			p.fix.Sprintf("fix #%d:", i+1),
			resolved.Title, resolved.Kind, resolved.Applicability)
		if resolved.IsPreferred {
			fmt.Fprint(w, " preferred")
		}
		if resolved.ID != "" {
			fmt.Fprintf(w, " id=%s", resolved.ID)
		}
		fmt.Fprintln(w)

		if err != nil {
			fmt.Fprintf(w, "    (fix unavailable: %v)\n", err)
			continue
		}

		for _, edit := range resolved.Edits {
			ef := fs.Get(edit.Span.File)
			epos, _ := fs.Resolve(edit.Span)
			fmt.Fprintf(w, "    %s:%d:%d: apply=%q\n",
				displayPath(ef, fs, p.opts.PathMode),
				epos.Line, epos.Col,
				edit.NewText)

			if p.opts.ShowPreview {
				preview, perr := buildFixEditPreview(fs, edit)
				if perr != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      - %s\n", line)
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      + %s\n", line)
				}
			}
		}
	}
}
