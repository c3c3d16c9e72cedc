package vunkast

import (
	"fmt"
	"strings"
)

// Expr is the closed expression sum type the parser produces. Variants are
// sealed by the unexported marker method so consumers can type switch
// exhaustively; there is no open extension. Children are exclusively
// owned, the tree is finite and acyclic, and its leaves are Variable or
// Literal nodes.
type Expr interface {
	isExpr()
}

type Variable struct {
	Name VariableName
}

type Unary struct {
	Op      UnaryOp
	Operand Expr
}

type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

type LiteralExpr struct {
	Value Literal
}

// Binding is one name = expr pair inside a let.
type Binding struct {
	Name  VariableName
	Value Expr
}

// LetIn scopes one or more bindings over a body expression.
type LetIn struct {
	Bindings []Binding
	Body     Expr
}

// IfElse is a conditional expression; both branches are mandatory.
type IfElse struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Decl is a type or signature declaration occurring in expression
// position.
type Decl struct {
	Name VariableName
	Body DeclBody
}

// Def is a named value or function definition occurring in expression
// position.
type Def struct {
	Name   VariableName
	Params []VariableName
	Body   Expr
}

type DeclBody struct {
	Text string
}

func (Variable) isExpr()    {}
func (Unary) isExpr()       {}
func (Binary) isExpr()      {}
func (LiteralExpr) isExpr() {}
func (LetIn) isExpr()       {}
func (IfElse) isExpr()      {}
func (Decl) isExpr()        {}
func (Def) isExpr()         {}

// Format renders an expression back to a source-like form, mostly for
// tests and debug dumps.
func Format(e Expr) string {
	switch e := e.(type) {

	case Variable:
		return string(e.Name)

	case Unary:
		return e.Op.String() + Format(e.Operand)

	case Binary:
		return fmt.Sprintf("(%s %s %s)", Format(e.Left), e.Op, Format(e.Right))

	case LiteralExpr:
		return e.Value.String()

	case LetIn:
		var sb strings.Builder
		sb.WriteString("let ")
		for i, b := range e.Bindings {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(string(b.Name))
			sb.WriteString(" = ")
			sb.WriteString(Format(b.Value))
		}
		sb.WriteString(" in ")
		sb.WriteString(Format(e.Body))
		return sb.String()

	case IfElse:
		return fmt.Sprintf("if %s then %s else %s", Format(e.Cond), Format(e.Then), Format(e.Else))

	case Decl:
		return fmt.Sprintf("%s : %s", e.Name, e.Body.Text)

	case Def:
		var sb strings.Builder
		sb.WriteString(string(e.Name))
		for _, p := range e.Params {
			sb.WriteString(" ")
			sb.WriteString(string(p))
		}
		sb.WriteString(" = ")
		sb.WriteString(Format(e.Body))
		return sb.String()

	}
	panic(fmt.Errorf("unknown expression: %T", e))
}
