// Package trivia contains the layout queries and rewrites prim's rules are
// built on: boundary scans over trivia lists, the combined inter-token view,
// and blank-line detection and removal.
//
// Every function is pure. Queries return (index, ok) pairs; mutations return
// freshly allocated lists and never touch their input. A list argument is
// always read in source order, and an index always points into the argument
// it was computed from.
//
// The scans reconstruct line structure from trivia kinds alone, without
// offsets. Two shapes matter throughout:
//
//   - a blank line is an EndOfLine trivium preceded only by whitespace back
//     to the previous EndOfLine (or the start of the list);
//   - a conditional directive (#if/#elif/#else/#endif) embeds its own line
//     terminator, so the trivium after it already sits at a line start.
//
// The blank-line operations interpret position 0 of their argument as a line
// start. A token's leading list mid-file starts with the terminator of the
// previous line, so callers working on such lists slice that terminator off
// first; see internal/rules for the call sites.
package trivia
