package vunklex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Bare + | = lex as Ctrl; their doubled forms stay operators.
	ctrlChars = "(),=:+.;[]{}|"
	opChars   = "-*/%<>&^"
)

var twoCharOps = [...]string{"==", "!=", "<=", ">=", "&&", "||", "++"}

// Tokenizer performs a single left-to-right pass over a Source, producing
// classified tokens with byte spans. Lexical errors never abort the pass:
// the offending input is skipped and a Diagnostic accumulated, so callers
// always get a best-effort stream plus every error found.
type Tokenizer struct {
	source *Source
	pos    int
	diags  []Diagnostic
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
	}
}

// Scan tokenizes the whole source, discarding comment trivia.
func Scan(source *Source) ([]Token, []Diagnostic) {
	return scan(source, false)
}

// ScanAll is Scan but retains Comment tokens, for tooling that wants the
// trivia side channel.
func ScanAll(source *Source) ([]Token, []Diagnostic) {
	return scan(source, true)
}

func scan(source *Source, keepComments bool) ([]Token, []Diagnostic) {
	t := NewTokenizer(source)
	var tokens []Token
	for {
		tok := t.Next()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenComment && !keepComments {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, t.Diagnostics()
}

// Diagnostics returns the lexical errors accumulated so far, in source
// order.
func (t *Tokenizer) Diagnostics() []Diagnostic {
	return t.diags
}

// Next returns the next token, skipping whitespace and recovering from
// unrecognized input. At end of input it returns a TokenEOF token whose
// span is empty.
func (t *Tokenizer) Next() Token {
	content := t.source.Content

	t.skipWhitespace()
	for t.pos < len(content) {
		start := t.pos
		c := content[t.pos]

		switch {
		case c == '#':
			return t.scanComment()
		case c >= '0' && c <= '9':
			return t.scanNumber()
		case c == '"':
			tok, ok := t.scanString()
			if !ok {
				t.skipWhitespace()
				continue
			}
			return tok
		case isIdentStart(c):
			return t.scanIdent()
		}

		// Longest match: doubled operators and the arrow before any
		// single-char reading of their first byte.
		if t.pos+1 < len(content) {
			two := content[t.pos : t.pos+2]
			if two == "->" {
				t.pos += 2
				return Token{Kind: TokenArrow, Text: two, Span: Span{Start: start, End: t.pos}}
			}
			for _, op := range twoCharOps {
				if two == op {
					t.pos += 2
					return Token{Kind: TokenOp, Text: two, Span: Span{Start: start, End: t.pos}}
				}
			}
		}

		if strings.IndexByte(ctrlChars, c) >= 0 {
			t.pos++
			return Token{Kind: TokenCtrl, Text: string(c), Span: Span{Start: start, End: t.pos}}
		}

		if strings.IndexByte(opChars, c) >= 0 {
			t.pos++
			return Token{Kind: TokenOp, Text: string(c), Span: Span{Start: start, End: t.pos}}
		}

		// No rule matches: skip one rune and retry.
		r, size := utf8.DecodeRuneInString(content[t.pos:])
		t.pos += size
		t.addDiag(UnrecognizedInput, Span{Start: start, End: t.pos}, "unrecognized input "+quoteRune(r))
		t.skipWhitespace()
	}

	return Token{Kind: TokenEOF, Span: Span{Start: t.pos, End: t.pos}}
}

func (t *Tokenizer) skipWhitespace() {
	content := t.source.Content
	for t.pos < len(content) {
		r, size := utf8.DecodeRuneInString(content[t.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		t.pos += size
	}
}

func (t *Tokenizer) scanComment() Token {
	content := t.source.Content
	start := t.pos
	t.pos++ // '#'
	bodyStart := t.pos
	for t.pos < len(content) && content[t.pos] != '\n' {
		t.pos++
	}
	return Token{
		Kind: TokenComment,
		Text: content[bodyStart:t.pos],
		Span: Span{Start: start, End: t.pos},
	}
}

// scanNumber scans digits with an optional fraction. The dot is consumed
// only when a digit follows it, so "3." yields Number("3") and the dot is
// left for the control rule.
func (t *Tokenizer) scanNumber() Token {
	content := t.source.Content
	start := t.pos
	for t.pos < len(content) && isDigit(content[t.pos]) {
		t.pos++
	}
	if t.pos+1 < len(content) && content[t.pos] == '.' && isDigit(content[t.pos+1]) {
		t.pos++
		for t.pos < len(content) && isDigit(content[t.pos]) {
			t.pos++
		}
	}
	return Token{
		Kind: TokenNumber,
		Text: content[start:t.pos],
		Span: Span{Start: start, End: t.pos},
	}
}

// scanString scans a double-quoted literal with no escape sequences. On a
// missing closing quote it records an UnterminatedString diagnostic and
// reports no token.
func (t *Tokenizer) scanString() (Token, bool) {
	content := t.source.Content
	start := t.pos
	t.pos++ // opening quote
	for t.pos < len(content) {
		if content[t.pos] == '"' {
			t.pos++
			return Token{
				Kind: TokenString,
				Text: content[start+1 : t.pos-1],
				Span: Span{Start: start, End: t.pos},
			}, true
		}
		t.pos++
	}
	t.addDiag(UnterminatedString, Span{Start: start, End: t.pos}, "unterminated string literal")
	return Token{}, false
}

// scanIdent scans a maximal-munch identifier, then classifies the complete
// lexeme against the keyword table. Prefix matching a keyword before the
// identifier ends would mis-split identifiers like "index".
func (t *Tokenizer) scanIdent() Token {
	content := t.source.Content
	start := t.pos
	t.pos++
	for t.pos < len(content) && isIdentContinue(content[t.pos]) {
		t.pos++
	}
	text := content[start:t.pos]
	kind := TokenIdent
	if k, ok := keywords[text]; ok {
		kind = k
	}
	return Token{
		Kind: kind,
		Text: text,
		Span: Span{Start: start, End: t.pos},
	}
}

func (t *Tokenizer) addDiag(kind DiagKind, span Span, msg string) {
	t.diags = append(t.diags, Diagnostic{
		Kind:    kind,
		Span:    span,
		Message: msg,
		Source:  t.source,
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$'
}

func isIdentContinue(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_'
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}
