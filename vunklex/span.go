package vunklex

import "fmt"

// Span is a half-open byte range [Start, End) into the source content.
// Spans in a scanned stream are non-overlapping and strictly increasing
// in Start.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Pos is a 1-based line/column position derived from a Span against its
// Source. Columns count runes, not bytes.
type Pos struct {
	Line   int
	Column int
}
