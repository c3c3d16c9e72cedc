package vunkast

import (
	"testing"

	"github.com/vunk-lang/vunk/vunklex"
)

func TestLiteralFromToken(t *testing.T) {
	tokens, diags := vunklex.Scan(vunklex.NewSource("test", `42 3.14 "abc" true false`))
	if len(diags) > 0 {
		t.Fatal()
	}
	wants := []Literal{
		NumberLiteral("42"),
		NumberLiteral("3.14"),
		StringLiteral("abc"),
		BoolLiteral(true),
		BoolLiteral(false),
	}
	if len(tokens) != len(wants) {
		t.Fatalf("got %d tokens", len(tokens))
	}
	for i, tok := range tokens {
		lit, err := LiteralFromToken(tok)
		if err != nil {
			t.Fatal(err)
		}
		if lit != wants[i] {
			t.Fatalf("got %v, want %v", lit, wants[i])
		}
	}
}

func TestLiteralFromTokenRejects(t *testing.T) {
	_, err := LiteralFromToken(vunklex.Token{Kind: vunklex.TokenIdent, Text: "x"})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestLiteralString(t *testing.T) {
	if NumberLiteral("3.14").String() != "3.14" {
		t.Fatal()
	}
	if StringLiteral("abc").String() != `"abc"` {
		t.Fatal()
	}
	if BoolLiteral(true).String() != "true" {
		t.Fatal()
	}
	if BoolLiteral(false).String() != "false" {
		t.Fatal()
	}
}
