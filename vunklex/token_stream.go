package vunklex

// TokenStream is how the parser consumes a scan. Current never returns
// nil; past the end it keeps reporting a TokenEOF token.
type TokenStream interface {
	Current() *Token
	Consume()
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
	eof    Token
}

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	var end int
	if n := len(tokens); n > 0 {
		end = tokens[n-1].Span.End
	}
	return &SliceTokenStream{
		tokens: tokens,
		eof:    Token{Kind: TokenEOF, Span: Span{Start: end, End: end}},
	}
}

func (s *SliceTokenStream) Current() *Token {
	if s.idx >= len(s.tokens) {
		return &s.eof
	}
	return &s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

// Mark saves the current position so a speculative parse can Reset back to
// it after deciding a lookahead went down the wrong branch.
func (s *SliceTokenStream) Mark() int {
	return s.idx
}

func (s *SliceTokenStream) Reset(mark int) {
	if mark < 0 {
		mark = 0
	}
	if mark > len(s.tokens) {
		mark = len(s.tokens)
	}
	s.idx = mark
}
