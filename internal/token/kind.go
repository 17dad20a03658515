package token

// Kind represents the category of a source token.
//
// Layout analysis does not need a full C grammar: words cover identifiers and
// keywords alike, and only the delimiters the style rules anchor on get their
// own kinds. Everything else is Punct.
type Kind uint8

//go:generate stringer -type=Kind
const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Word represents an identifier or keyword.
	Word
	// Number represents a numeric literal.
	Number
	// StringLit represents a double-quoted string literal.
	StringLit // "..."
	// CharLit represents a single-quoted character literal.
	CharLit // '...'

	// LBrace represents the left brace delimiter.
	LBrace // {
	// RBrace represents the right brace delimiter.
	RBrace // }
	// LParen represents the left parenthesis delimiter.
	LParen // (
	// RParen represents the right parenthesis delimiter.
	RParen // )
	// LBracket represents the left bracket delimiter.
	LBracket // [
	// RBracket represents the right bracket delimiter.
	RBracket // ]
	// Semicolon represents the semicolon delimiter.
	Semicolon // ;
	// Punct represents any other punctuation or operator run.
	Punct
)
