package flop

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenInteger
	TokenSymbol
	TokenString
	TokenBool
	TokenLeftRound
	TokenRightRound
	TokenLeftSquare
	TokenRightSquare
	TokenDefn
	TokenSetq
	TokenIf
	TokenDocString
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:     "invalid",
	TokenInteger:     "integer",
	TokenSymbol:      "symbol",
	TokenString:      "string",
	TokenBool:        "bool",
	TokenLeftRound:   "(",
	TokenRightRound:  ")",
	TokenLeftSquare:  "[",
	TokenRightSquare: "]",
	TokenDefn:        "defn",
	TokenSetq:        "setq",
	TokenIf:          "if",
	TokenDocString:   "docstring",
	TokenEOF:         "end of input",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// IsScalar reports whether tokens of this kind can stand alone as a literal value.
func (k TokenKind) IsScalar() bool {
	switch k {
	case TokenInteger, TokenString, TokenBool, TokenDocString:
		return true
	}
	return false
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenString, TokenDocString:
		return fmt.Sprintf("%q", t.Text)
	case TokenEOF:
		return t.Kind.String()
	}
	return t.Text
}

// Pos is the location of a token. Column and End are 1-based rune columns, End exclusive.
type Pos struct {
	Source *Source
	Line   int
	Column int
	End    int
}

func (p Pos) String() string {
	name := "<input>"
	if p.Source != nil && p.Source.Name != "" {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}
