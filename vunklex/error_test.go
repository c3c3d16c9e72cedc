package vunklex

import (
	"strings"
	"testing"
)

func TestDiagnosticError(t *testing.T) {
	source := NewSource("main.vunk", "let x = 1 @ in x")
	_, diags := Scan(source)
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}

	msg := diags[0].Error()
	if !strings.Contains(msg, "main.vunk:1:11") {
		t.Fatalf("got %q", msg)
	}
	lines := strings.Split(msg, "\n")
	if len(lines) < 3 {
		t.Fatalf("got %q", msg)
	}
	if lines[1] != "let x = 1 @ in x" {
		t.Fatalf("got %q", lines[1])
	}
	if lines[2] != "          ^" {
		t.Fatalf("got %q", lines[2])
	}
}

func TestDiagnosticErrorSecondLine(t *testing.T) {
	source := NewSource("main.vunk", "let x = 1\nin ~ x")
	_, diags := Scan(source)
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	msg := diags[0].Error()
	if !strings.Contains(msg, "main.vunk:2:4") {
		t.Fatalf("got %q", msg)
	}
	lines := strings.Split(msg, "\n")
	if lines[1] != "in ~ x" {
		t.Fatalf("got %q", lines[1])
	}
	if lines[2] != "   ^" {
		t.Fatalf("got %q", lines[2])
	}
}

func TestDiagnosticWithoutSource(t *testing.T) {
	diag := Diagnostic{
		Kind:    UnrecognizedInput,
		Message: "unrecognized input '@'",
	}
	if diag.Error() != "unrecognized input '@'" {
		t.Fatalf("got %q", diag.Error())
	}
}

func TestPosAt(t *testing.T) {
	source := NewSource("test", "ab\ncd\ne")
	tests := []struct {
		offset int
		pos    Pos
	}{
		{0, Pos{1, 1}},
		{1, Pos{1, 2}},
		{2, Pos{1, 3}},
		{3, Pos{2, 1}},
		{5, Pos{2, 3}},
		{6, Pos{3, 1}},
		{100, Pos{3, 2}},
	}
	for _, test := range tests {
		if got := source.PosAt(test.offset); got != test.pos {
			t.Fatalf("offset %d: got %v, want %v", test.offset, got, test.pos)
		}
	}
}
