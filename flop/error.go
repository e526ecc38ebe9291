package flop

import (
	"errors"
	"fmt"
	"strings"
)

type Phase uint8

const (
	PhaseLex Phase = iota + 1
	PhaseParse
	PhaseEval
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lexical error"
	case PhaseParse:
		return "parse error"
	case PhaseEval:
		return "evaluation error"
	}
	return "error"
}

// lexical
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidCharacter   = errors.New("invalid character")
)

// parse
var (
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrUnbalanced         = errors.New("unbalanced brackets")
	ErrExpectedSymbol     = errors.New("expected a symbol")
	ErrExpectedBracket    = errors.New("expected a bracket")
	ErrExpectedDocString  = errors.New("expected a docstring")
	ErrInvalidAssignment  = errors.New("invalid variable assignment")
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrExtraTokens        = errors.New("extra tokens remaining")
)

// evaluation
var (
	ErrVariableNotDefined = errors.New("variable not defined")
	ErrUnknownFunction    = errors.New("unknown function")
	ErrParameter          = errors.New("wrong number of arguments")
	ErrOperands           = errors.New("insufficient operands")
	ErrNotInteger         = errors.New("expected an integer")
	ErrNotBool            = errors.New("expected a boolean")
	ErrInvalidInteger     = errors.New("invalid integer literal")
	ErrDivisionByZero     = errors.New("integer division by zero")
	ErrOverflow           = errors.New("integer overflow")
	ErrReservedName       = errors.New("reserved name")
	ErrUnsupported        = errors.New("unsupported")
	ErrDepthExceeded      = errors.New("maximum depth exceeded")
)

// TokenError is an error anchored at the token that caused it.
type TokenError struct {
	Phase  Phase
	Err    error
	Detail string
	Token  *Token
}

func newError(phase Phase, err error, token *Token, format string, args ...any) *TokenError {
	return &TokenError{
		Phase:  phase,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
		Token:  token,
	}
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Message is the one-line description without location or snippet.
func (e *TokenError) Message() string {
	if e.Detail == "" {
		return e.Phase.String() + ": " + e.Err.Error()
	}
	return e.Phase.String() + ": " + e.Err.Error() + ": " + e.Detail
}

func (e *TokenError) Error() string {
	if e.Token == nil {
		return e.Message()
	}
	var sb strings.Builder
	sb.WriteString(e.Message())
	sb.WriteString(" at ")
	sb.WriteString(e.Token.Pos.String())
	if snippet := e.Snippet(); snippet != "" {
		sb.WriteString("\n")
		sb.WriteString(snippet)
	}
	return sb.String()
}

// Snippet renders the offending source line with the token's span underlined.
func (e *TokenError) Snippet() string {
	if e.Token == nil {
		return ""
	}
	pos := e.Token.Pos
	line, ok := pos.Source.Line(pos.Line)
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")

	runes := []rune(line)
	col := pos.Column - 1
	for i, r := range runes {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	width := pos.End - pos.Column
	if width < 1 {
		width = 1
	}
	sb.WriteString(strings.Repeat("^", width))
	sb.WriteString("\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
