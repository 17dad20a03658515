package trivia

import "prim/internal/token"

// StripTrailingWhitespace removes the removable whitespace suffix found by
// TrailingWhitespaceStart. The input is returned as-is when there is nothing
// to remove.
func StripTrailingWhitespace(list []token.Trivia) []token.Trivia {
	cut, ok := TrailingWhitespaceStart(list)
	if !ok {
		return list
	}
	return append([]token.Trivia(nil), list[:cut]...)
}

// StripLeadingWhitespace removes every whitespace and line-break trivium
// before the first content trivium. An all-whitespace list strips to empty.
func StripLeadingWhitespace(list []token.Trivia) []token.Trivia {
	i, ok := FirstNonWhitespace(list)
	if !ok {
		return nil
	}
	if i == 0 {
		return list
	}
	return append([]token.Trivia(nil), list[i:]...)
}

// HasBlankLines reports whether at least one blank line separates the list's
// trailing indentation run from the nearest content before it. Position 0 of
// the list is read as a line start, so a list that is nothing but whitespace
// and line breaks beyond its first terminator reports true.
//
// Whitespace with no line break before it reports false: that is indentation
// on the content's own line, not a blank line.
func HasBlankLines(list []token.Trivia) bool {
	i := len(list) - 1
	for i >= 0 && list[i].Kind.IsWhitespace() {
		i--
	}
	if i < 0 || !list[i].Kind.IsEndOfLine() {
		return false
	}
	for i--; i >= 0; i-- {
		switch k := list[i].Kind; {
		case k.IsWhitespace():
		case k.IsEndOfLine():
			return true
		case k.IsDirective():
			// Директива несёт свой терминатор: строка после неё уже закрыта.
			return true
		default:
			return false
		}
	}
	return true
}

// HasLeadingBlankLines reports whether the token's leading trivia holds a
// blank line above the token's own indentation.
func HasLeadingBlankLines(tok token.Token) bool {
	return HasBlankLines(tok.Leading)
}

// StripBlankLines deletes the blank lines between the list's trailing
// indentation run and the nearest content before it. The content's own line
// terminator survives, conditional directives survive together with the line
// break after them, and a blank run reaching the start of the list is deleted
// whole. The input is returned as-is when no blank line is found.
func StripBlankLines(list []token.Trivia) []token.Trivia {
	out, changed := stripBlankLines(list)
	if !changed {
		return list
	}
	return out
}

func stripBlankLines(list []token.Trivia) ([]token.Trivia, bool) {
	s := len(list)
	for s > 0 && list[s-1].Kind.IsWhitespace() {
		s--
	}
	if s == 0 || !list[s-1].Kind.IsEndOfLine() {
		return list, false
	}

	j := s - 1
	for j >= 0 {
		if k := list[j].Kind; !k.IsWhitespace() && !k.IsEndOfLine() {
			break
		}
		j--
	}

	switch {
	case j < 0:
		// Пустые строки упираются в начало списка — удаляем весь разбег.
		return append([]token.Trivia(nil), list[s:]...), true

	case list[j].Kind.IsDirective():
		// Сама директива и всё между ней и отступом остаются на месте;
		// зачистка продолжается перед директивой, где её собственная
		// строка служит новым якорем.
		prefix, changed := stripBlankLines(list[:j])
		if !changed {
			return list, false
		}
		out := make([]token.Trivia, 0, len(prefix)+len(list)-j)
		out = append(out, prefix...)
		return append(out, list[j:]...), true

	default:
		// Содержимое ограничивает разбег: его терминатор сохраняется,
		// пустые строки за ним уходят.
		k := j + 1
		for !list[k].Kind.IsEndOfLine() {
			k++
		}
		if k+1 == s {
			return list, false
		}
		out := make([]token.Trivia, 0, k+1+len(list)-s)
		out = append(out, list[:k+1]...)
		return append(out, list[s:]...), true
	}
}

// WithoutLeadingBlankLines returns the token with the blank lines in its
// leading trivia removed per StripBlankLines. Text and trailing trivia are
// untouched; the token itself is returned when nothing changed.
func WithoutLeadingBlankLines(tok token.Token) token.Token {
	out, changed := stripBlankLines(tok.Leading)
	if !changed {
		return tok
	}
	return tok.WithLeading(out)
}
