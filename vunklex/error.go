package vunklex

import (
	"fmt"
	"strings"
)

type DiagKind uint8

const (
	UnrecognizedInput DiagKind = iota
	UnterminatedString
)

func (k DiagKind) String() string {
	switch k {
	case UnrecognizedInput:
		return "unrecognized input"
	case UnterminatedString:
		return "unterminated string"
	}
	return "unknown"
}

// Diagnostic is a recoverable lexical error. The scan that produced it
// continued past the offending span, so a single source can carry any
// number of these alongside its best-effort token stream.
type Diagnostic struct {
	Kind    DiagKind
	Span    Span
	Message string
	Source  *Source
}

var _ error = Diagnostic{}

func (d Diagnostic) Error() string {
	if d.Source == nil {
		return d.Message
	}

	pos := d.Source.PosAt(d.Span.Start)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", d.Message, d.Source.Name, pos.Line, pos.Column))

	// Line content
	lines := d.Source.Lines
	idx := pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		runes := []rune(line)
		col := pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				w := runeWidth(r)
				for k := 0; k < w; k++ {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
