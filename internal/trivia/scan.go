package trivia

import "prim/internal/token"

// FirstNonWhitespace returns the index of the first trivium that is neither
// horizontal whitespace nor a line terminator. ok is false when the list is
// empty or contains nothing but whitespace and line breaks.
func FirstNonWhitespace(list []token.Trivia) (int, bool) {
	for i := range list {
		k := list[i].Kind
		if !k.IsWhitespace() && !k.IsEndOfLine() {
			return i, true
		}
	}
	return 0, false
}

// FirstNonBlankLine returns the index where the non-blank region of the list
// begins: the content's own indentation and everything after it. Blank lines
// strictly before that index are whole lines containing only whitespace.
//
// ok is false only when the list consists of blank lines with nothing after
// them at all. An empty list and a list holding a single whitespace run both
// report index 0: there is no blank line to speak of.
func FirstNonBlankLine(list []token.Trivia) (int, bool) {
	// Якорь: первый содержательный элемент, либо конец списка.
	anchor := len(list)
	if i, ok := FirstNonWhitespace(list); ok {
		anchor = i
	}

	// Ближайший терминатор перед якорем открывает непустую область сразу
	// после себя. Нет терминатора — нет и пустой строки.
	for p := anchor - 1; p >= 0; p-- {
		if !list[p].Kind.IsEndOfLine() {
			continue
		}
		if p == len(list)-1 {
			return 0, false
		}
		return p + 1, true
	}
	return 0, true
}

// TrailingWhitespaceStart returns the index where the removable whitespace
// suffix of the list begins: trailing whitespace runs and blank lines after
// the last content trivium. When that content trivium has its line terminator
// directly after it, the terminator is kept out of the suffix so stripping
// never joins the content line with whatever follows the list. Conditional
// directives carry their terminator inside their own text, so a break right
// after one opens an empty line and stays removable.
//
// ok is false when the list is empty, ends in a content trivium, or the
// suffix would be empty after keeping the terminator.
func TrailingWhitespaceStart(list []token.Trivia) (int, bool) {
	cut := -1
	stopped := false
	for i := len(list) - 1; i >= 0; i-- {
		k := list[i].Kind
		if k.IsWhitespace() || k.IsEndOfLine() {
			cut = i
			continue
		}
		stopped = true
		break
	}
	if cut < 0 {
		return 0, false
	}
	if stopped && list[cut].Kind.IsEndOfLine() && !list[cut-1].Kind.EmbedsTerminator() {
		cut++
	}
	if cut == len(list) {
		return 0, false
	}
	return cut, true
}
