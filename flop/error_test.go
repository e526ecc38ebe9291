package flop

import (
	"errors"
	"testing"
)

func TestErrorSnippet(t *testing.T) {
	_, err := run(t, NewEnvironment(), "(setq a 1)\n(+ a bar)")
	if !errors.Is(err, ErrVariableNotDefined) {
		t.Fatalf("got %v", err)
	}
	expected := "evaluation error: variable not defined: bar at test:2:6\n" +
		"(+ a bar)\n" +
		"     ^^^\n"
	if err.Error() != expected {
		t.Fatalf("got %q", err.Error())
	}
}

func TestErrorSnippetWide(t *testing.T) {
	_, err := Tokenize(NewSource("wide", "(+ \"你好\" \x02)"))
	var tokErr *TokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("got %v", err)
	}
	expected := "(+ \"你好\" \x02)\n" +
		"          ^\n"
	if got := tokErr.Snippet(); got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := newError(PhaseParse, ErrExtraTokens, nil, "")
	if err.Error() != "parse error: extra tokens remaining" {
		t.Fatalf("got %q", err.Error())
	}
	if err.Snippet() != "" {
		t.Fatalf("got %q", err.Snippet())
	}

	_, err2 := Tokenize(NewSource("", `"abc`))
	var tokErr *TokenError
	if !errors.As(err2, &tokErr) {
		t.Fatalf("got %v", err2)
	}
	if tokErr.Message() != "lexical error: unterminated string literal" {
		t.Fatalf("got %q", tokErr.Message())
	}
	if tokErr.Token.Pos.String() != "<input>:1:1" {
		t.Fatalf("got %s", tokErr.Token.Pos)
	}
}
