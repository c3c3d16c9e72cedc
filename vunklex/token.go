package vunklex

type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF

	TokenIdent
	TokenNumber
	TokenString
	TokenComment

	TokenArrow // ->
	TokenCtrl  // one of ( ) , = : + . ; [ ] { } |
	TokenOp    // operator lexeme, stored as its literal text
	TokenBool  // true / false

	TokenUse
	TokenPub
	TokenLet
	TokenIn
	TokenIf
	TokenThen
	TokenElse
	TokenWhere
	TokenMatch
	TokenWhen
	TokenType
	TokenImpl
	TokenEnum
	TokenMod
)

// keywords maps a complete identifier lexeme to its reserved-word kind.
// Lookup happens only after maximal munch, so "index" never splits into
// "in" + "dex".
var keywords = map[string]TokenKind{
	"use":   TokenUse,
	"pub":   TokenPub,
	"let":   TokenLet,
	"in":    TokenIn,
	"if":    TokenIf,
	"then":  TokenThen,
	"else":  TokenElse,
	"where": TokenWhere,
	"match": TokenMatch,
	"when":  TokenWhen,
	"type":  TokenType,
	"impl":  TokenImpl,
	"enum":  TokenEnum,
	"mod":   TokenMod,
	"true":  TokenBool,
	"false": TokenBool,
}

var kindNames = map[TokenKind]string{
	TokenInvalid: "invalid",
	TokenEOF:     "eof",
	TokenIdent:   "ident",
	TokenNumber:  "number",
	TokenString:  "string",
	TokenComment: "comment",
	TokenArrow:   "arrow",
	TokenCtrl:    "ctrl",
	TokenOp:      "op",
	TokenBool:    "bool",
	TokenUse:     "use",
	TokenPub:     "pub",
	TokenLet:     "let",
	TokenIn:      "in",
	TokenIf:      "if",
	TokenThen:    "then",
	TokenElse:    "else",
	TokenWhere:   "where",
	TokenMatch:   "match",
	TokenWhen:    "when",
	TokenType:    "type",
	TokenImpl:    "impl",
	TokenEnum:    "enum",
	TokenMod:     "mod",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsKeyword reports whether the kind is a reserved word, including the
// boolean literals.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenBool && k <= TokenMod
}

// String renders the token as it appears in source. Comments get their
// leading hash back so a dump stays re-scannable.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return ""
	case TokenComment:
		return "#" + t.Text
	case TokenArrow:
		return "->"
	case TokenString:
		return `"` + t.Text + `"`
	default:
		return t.Text
	}
}
