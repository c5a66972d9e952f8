/*
File    : resl/span/span.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package span locates bytes of RESL source text and renders them for
// diagnostics. Every token and AST node carries a Span; every ParseError
// carries one too, so an error can always point at the exact text that
// caused it.
package span

import (
	"strings"
)

// Span is a half-open byte range [Start, End) into a single source string.
// Both offsets are 0-indexed byte positions, not rune positions - callers
// that need line/column must go through Locate.
type Span struct {
	Start int
	End   int
}

// New builds a Span from a start and end byte offset.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Merge returns the smallest Span covering both a and b.
func Merge(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// Pos is a 1-indexed line/column location derived from a byte offset.
type Pos struct {
	Line   int
	Column int
}

// Locate converts a byte offset in src into a 1-indexed line/column Pos.
//
// Parameters:
//   - src: the full source text the offset is measured against.
//   - offset: a 0-indexed byte offset into src, as stored in a Span.
//
// Returns:
//   - Pos: the 1-indexed line/column of that offset. Offsets past the
//     end of src clamp to the position just after the last character,
//     so a Span pointing at EOF still renders a sensible diagnostic.
func Locate(src string, offset int) Pos {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1
	col := 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Pos{Line: line, Column: col}
}

// Snippet renders a caret-annotated view of sp within src: the source line
// containing sp.Start, optionally the line before and after for context,
// and a line of carets under the offending range. It is used by
// ParseError.Render to produce one-to-three-line diagnostics per spec.md §7.
func Snippet(src string, sp Span) string {
	lines := strings.Split(src, "\n")
	start := Locate(src, sp.Start)
	end := Locate(src, sp.End)

	lineIdx := start.Line - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}
	if lineIdx < 0 {
		return ""
	}

	var b strings.Builder
	if lineIdx > 0 {
		b.WriteString(lines[lineIdx-1])
		b.WriteByte('\n')
	}

	line := lines[lineIdx]
	b.WriteString(line)
	b.WriteByte('\n')

	caretLen := end.Column - start.Column
	if end.Line != start.Line || caretLen < 1 {
		caretLen = 1
	}
	col := start.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	b.WriteString(strings.Repeat(" ", col))
	b.WriteString(strings.Repeat("^", caretLen))

	if lineIdx+1 < len(lines) {
		b.WriteByte('\n')
		b.WriteString(lines[lineIdx+1])
	}

	return b.String()
}
