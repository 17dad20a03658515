package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexTokenTooLong             Code = 1006

	// Правила вёрстки
	StyleInfo                  Code = 2000
	StyleTrailingWhitespace    Code = 2001
	StyleFileStartBlankLines   Code = 2002
	StyleBlankAfterOpenBrace   Code = 2003
	StyleBlankBeforeCloseBrace Code = 2004
	StyleTooManyBlankLines     Code = 2005
	StyleFileEndBlankLines     Code = 2006
	StyleMissingFinalNewline   Code = 2007

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Ошибки проекта / манифеста
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001
	ProjUnknownRule     Code = 5002

	// Observability
	ObsInfo    Code = 9000
	ObsTimings Code = 9001
)

var ( // todo расширить описания и использовать как notes
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedChar:         "Unterminated character literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Malformed number literal",
		LexTokenTooLong:             "Token exceeds length limit",
		StyleInfo:                   "Style information",
		StyleTrailingWhitespace:     "Trailing whitespace",
		StyleFileStartBlankLines:    "Blank lines at start of file",
		StyleBlankAfterOpenBrace:    "Blank line after opening brace",
		StyleBlankBeforeCloseBrace:  "Blank line before closing brace",
		StyleTooManyBlankLines:      "Too many consecutive blank lines",
		StyleFileEndBlankLines:      "Blank lines at end of file",
		StyleMissingFinalNewline:    "Missing final newline",
		IOLoadFileError:             "Cannot load file",
		ProjInfo:                    "Project information",
		ProjInvalidManifest:         "Invalid prim.toml manifest",
		ProjUnknownRule:             "Unknown rule name in configuration",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Phase timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STYLE%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
