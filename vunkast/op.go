package vunkast

type UnaryOp uint8

const (
	UnaryInvalid UnaryOp = iota
	UnaryNeg             // -
	UnaryNot             // !
)

type BinaryOp uint8

const (
	BinaryInvalid BinaryOp = iota
	BinaryAdd              // +
	BinarySub              // -
	BinaryMul              // *
	BinaryDiv              // /
	BinaryRem              // %
	BinaryEq               // ==
	BinaryNeq              // !=
	BinaryLess             // <
	BinaryLessEq           // <=
	BinaryMore             // >
	BinaryMoreEq           // >=
	BinaryBitAnd           // &
	BinaryAnd              // &&
	BinaryBitOr            // |
	BinaryOr               // ||
	BinaryBitXor           // ^
	BinaryJoin             // ++
)

var binaryLexemes = map[string]BinaryOp{
	"+":  BinaryAdd,
	"-":  BinarySub,
	"*":  BinaryMul,
	"/":  BinaryDiv,
	"%":  BinaryRem,
	"==": BinaryEq,
	"!=": BinaryNeq,
	"<":  BinaryLess,
	"<=": BinaryLessEq,
	">":  BinaryMore,
	">=": BinaryMoreEq,
	"&":  BinaryBitAnd,
	"&&": BinaryAnd,
	"|":  BinaryBitOr,
	"||": BinaryOr,
	"^":  BinaryBitXor,
	"++": BinaryJoin,
}

var unaryLexemes = map[string]UnaryOp{
	"-": UnaryNeg,
	"!": UnaryNot,
}

// BinaryOpFromLexeme maps an operator token's text to its op tag. Every
// operator lexeme the tokenizer can emit maps to exactly one tag; the
// grammar, not this table, decides between unary and binary readings of
// "-".
func BinaryOpFromLexeme(text string) (BinaryOp, bool) {
	op, ok := binaryLexemes[text]
	return op, ok
}

func UnaryOpFromLexeme(text string) (UnaryOp, bool) {
	op, ok := unaryLexemes[text]
	return op, ok
}

func (op BinaryOp) String() string {
	for text, o := range binaryLexemes {
		if o == op {
			return text
		}
	}
	return "?"
}

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "!"
	}
	return "?"
}
