package vunkast

import (
	"fmt"

	"github.com/vunk-lang/vunk/vunklex"
)

type LiteralKind uint8

const (
	LitNumber LiteralKind = iota + 1
	LitString
	LitBool
)

// Literal is a constant value. Numbers keep their literal text; parsing
// to a numeric value happens in a later stage.
type Literal struct {
	Kind LiteralKind
	Text string
	Bool bool
}

func NumberLiteral(text string) Literal {
	return Literal{Kind: LitNumber, Text: text}
}

func StringLiteral(text string) Literal {
	return Literal{Kind: LitString, Text: text}
}

func BoolLiteral(v bool) Literal {
	return Literal{Kind: LitBool, Bool: v}
}

func (l Literal) String() string {
	switch l.Kind {
	case LitNumber:
		return l.Text
	case LitString:
		return `"` + l.Text + `"`
	case LitBool:
		if l.Bool {
			return "true"
		}
		return "false"
	}
	return "?"
}

// LiteralFromToken converts a literal-bearing token into its node form.
// Number, String, and Bool tokens each map to exactly one literal kind;
// anything else is rejected.
func LiteralFromToken(tok vunklex.Token) (Literal, error) {
	switch tok.Kind {
	case vunklex.TokenNumber:
		return NumberLiteral(tok.Text), nil
	case vunklex.TokenString:
		return StringLiteral(tok.Text), nil
	case vunklex.TokenBool:
		return BoolLiteral(tok.Text == "true"), nil
	}
	return Literal{}, fmt.Errorf("not a literal token: %s", tok.Kind)
}
