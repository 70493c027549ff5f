// Package source carries the text being lexed, parsed, and evaluated, and
// the byte-offset span type every token and expression node tags itself
// with.
package source

import "fmt"

// Source is a named chunk of program text. The name is whatever the host
// gave the text (a file path, "<eval>" for a one-off CLI eval, or "<repl>"
// for a REPL line) and is only ever used for diagnostics.
type Source struct {
	Name string
	Text string
}

// New wraps text under name.
func New(name, text string) Source {
	return Source{Name: name, Text: text}
}

// Span is a half-open byte range [Start, Start+Length) into a Source's
// Text. Spans are the only position representation carried through the
// lexer, parser, and evaluator; line/column are derived from a Span only
// when rendering a diagnostic to a human.
type Span struct {
	Start  int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// Cover returns the smallest span containing both s and other. Parser nodes
// use this to build a node's span from its first and last contributing
// token.
func (s Span) Cover(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}

	end := s.End()
	if other.End() > end {
		end = other.End()
	}

	return Span{Start: start, Length: end - start}
}

// Slice returns the text the span covers.
func (s Span) Slice(text string) string {
	if s.Start < 0 || s.End() > len(text) {
		return ""
	}

	return text[s.Start:s.End()]
}

// LineCol derives a 1-based line/column pair for a byte offset into text,
// for diagnostic rendering only — never stored alongside a Span.
func LineCol(text string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}
