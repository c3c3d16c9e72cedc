package vunklex

import "testing"

func TestKeywordTable(t *testing.T) {
	for text, kind := range keywords {
		if !kind.IsKeyword() {
			t.Fatalf("%s classified as %v", text, kind)
		}
	}
	if _, ok := keywords["index"]; ok {
		t.Fatal()
	}
	if keywords["true"] != TokenBool || keywords["false"] != TokenBool {
		t.Fatal()
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Kind: TokenIdent, Text: "foo"}, "foo"},
		{Token{Kind: TokenNumber, Text: "3.14"}, "3.14"},
		{Token{Kind: TokenString, Text: "abc"}, `"abc"`},
		{Token{Kind: TokenComment, Text: " note"}, "# note"},
		{Token{Kind: TokenArrow, Text: "->"}, "->"},
		{Token{Kind: TokenCtrl, Text: "("}, "("},
		{Token{Kind: TokenOp, Text: "<="}, "<="},
		{Token{Kind: TokenLet, Text: "let"}, "let"},
		{Token{Kind: TokenBool, Text: "true"}, "true"},
		{Token{Kind: TokenEOF}, ""},
	}
	for _, test := range tests {
		if got := test.token.String(); got != test.want {
			t.Fatalf("got %q, want %q", got, test.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if TokenIdent.String() != "ident" {
		t.Fatal()
	}
	if TokenKind(255).String() != "unknown" {
		t.Fatal()
	}
}
