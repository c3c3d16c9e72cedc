package vunkast

import (
	"testing"

	"github.com/vunk-lang/vunk/vunklex"
)

func TestBinaryOpFromLexeme(t *testing.T) {
	// every operator lexeme the tokenizer can emit maps to an op tag
	inputs := "+ - * / % < > & ^ | == != <= >= && || ++"
	tokens, diags := vunklex.Scan(vunklex.NewSource("test", inputs))
	if len(diags) > 0 {
		t.Fatal()
	}
	seen := make(map[BinaryOp]bool)
	for _, tok := range tokens {
		if tok.Kind != vunklex.TokenOp && tok.Kind != vunklex.TokenCtrl {
			t.Fatalf("got %v", tok.Kind)
		}
		op, ok := BinaryOpFromLexeme(tok.Text)
		if !ok {
			t.Fatalf("no binary op for %q", tok.Text)
		}
		if op == BinaryInvalid {
			t.Fatalf("invalid op for %q", tok.Text)
		}
		if seen[op] {
			t.Fatalf("duplicate op for %q", tok.Text)
		}
		seen[op] = true
	}
	if len(seen) != 17 {
		t.Fatalf("got %d ops", len(seen))
	}
}

func TestBinaryOpRoundTrip(t *testing.T) {
	for text, op := range binaryLexemes {
		if op.String() != text {
			t.Fatalf("%q round-trips to %q", text, op.String())
		}
	}
	if BinaryInvalid.String() != "?" {
		t.Fatal()
	}
}

func TestUnaryOpFromLexeme(t *testing.T) {
	op, ok := UnaryOpFromLexeme("-")
	if !ok || op != UnaryNeg {
		t.Fatal()
	}
	op, ok = UnaryOpFromLexeme("!")
	if !ok || op != UnaryNot {
		t.Fatal()
	}
	if _, ok := UnaryOpFromLexeme("*"); ok {
		t.Fatal()
	}
	if UnaryNeg.String() != "-" || UnaryNot.String() != "!" {
		t.Fatal()
	}
}
