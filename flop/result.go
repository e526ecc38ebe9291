package flop

import (
	"strconv"
	"strings"
)

type ResultKind uint8

const (
	ResultVoid ResultKind = iota
	ResultLiteral
	ResultList
)

// Result is the value of an evaluated node.
type Result struct {
	Kind  ResultKind
	Token *Token
	Items []Result
}

var Void = Result{Kind: ResultVoid}

func literalResult(tok *Token) Result {
	return Result{
		Kind:  ResultLiteral,
		Token: tok,
	}
}

func intResult(n int64, at *Token) Result {
	return literalResult(&Token{
		Kind: TokenInteger,
		Text: strconv.FormatInt(n, 10),
		Pos:  at.Pos,
	})
}

func boolResult(b bool, at *Token) Result {
	return literalResult(&Token{
		Kind: TokenBool,
		Text: strconv.FormatBool(b),
		Pos:  at.Pos,
	})
}

func (r Result) IsVoid() bool {
	return r.Kind == ResultVoid
}

func (r Result) Int() (int64, bool) {
	if r.Kind != ResultLiteral || r.Token.Kind != TokenInteger {
		return 0, false
	}
	n, err := strconv.ParseInt(r.Token.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r Result) Bool() (bool, bool) {
	if r.Kind != ResultLiteral || r.Token.Kind != TokenBool {
		return false, false
	}
	return r.Token.Text == "true", true
}

func (r Result) Str() (string, bool) {
	if r.Kind != ResultLiteral {
		return "", false
	}
	switch r.Token.Kind {
	case TokenString, TokenDocString:
		return r.Token.Text, true
	}
	return "", false
}

// Value converts the result to a plain Go value: int64, bool, string, []any or nil.
func (r Result) Value() any {
	switch r.Kind {
	case ResultLiteral:
		if n, ok := r.Int(); ok {
			return n
		}
		if b, ok := r.Bool(); ok {
			return b
		}
		return r.Token.Text
	case ResultList:
		ret := make([]any, 0, len(r.Items))
		for _, item := range r.Items {
			ret = append(ret, item.Value())
		}
		return ret
	}
	return nil
}

func (r Result) String() string {
	switch r.Kind {
	case ResultLiteral:
		return r.Token.String()
	case ResultList:
		var sb strings.Builder
		sb.WriteString("[")
		for i, item := range r.Items {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteString("]")
		return sb.String()
	}
	return ""
}

func (r Result) typeName() string {
	switch r.Kind {
	case ResultVoid:
		return "void"
	case ResultList:
		return "list"
	}
	return r.Token.Kind.String()
}
