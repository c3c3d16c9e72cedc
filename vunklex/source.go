package vunklex

import (
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// PosAt converts a byte offset into a line/column position. Offsets past
// the end of content clamp to the last position.
func (s *Source) PosAt(offset int) Pos {
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	line := 1
	col := 1
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(s.Content[i:])
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return Pos{Line: line, Column: col}
}

// Slice returns the source text covered by the span.
func (s *Source) Slice(span Span) string {
	start := min(span.Start, len(s.Content))
	end := min(span.End, len(s.Content))
	if start > end {
		return ""
	}
	return s.Content[start:end]
}
