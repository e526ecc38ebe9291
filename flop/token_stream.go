package flop

type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
	eof    *Token
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	s := &SliceTokenStream{
		tokens: tokens,
		eof:    &Token{Kind: TokenEOF},
	}
	if n := len(tokens); n > 0 {
		last := tokens[n-1].Pos
		s.eof.Pos = Pos{
			Source: last.Source,
			Line:   last.Line,
			Column: last.End,
			End:    last.End + 1,
		}
	}
	return s
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return s.eof, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

func (s *SliceTokenStream) Remaining() int {
	return len(s.tokens) - s.idx
}
