package vunkast

import (
	"fmt"

	"github.com/vunk-lang/vunk/vunklex"
)

type VariableName string

// VariableFromToken converts an identifier token into a Variable node.
func VariableFromToken(tok vunklex.Token) (Variable, error) {
	if tok.Kind != vunklex.TokenIdent {
		return Variable{}, fmt.Errorf("not an identifier token: %s", tok.Kind)
	}
	return Variable{Name: VariableName(tok.Text)}, nil
}
