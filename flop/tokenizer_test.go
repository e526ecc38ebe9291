package flop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func tokenize(t *testing.T, src string) []*Token {
	t.Helper()
	tokens, err := Tokenize(NewSource("test", src))
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

var ignorePos = cmpopts.IgnoreFields(Token{}, "Pos")

func TestTokenize(t *testing.T) {
	for _, c := range []struct {
		src    string
		expect []*Token
	}{
		{
			src: "(+ 1 2)",
			expect: []*Token{
				{Kind: TokenLeftRound, Text: "("},
				{Kind: TokenSymbol, Text: "+"},
				{Kind: TokenInteger, Text: "1"},
				{Kind: TokenInteger, Text: "2"},
				{Kind: TokenRightRound, Text: ")"},
			},
		},
		{
			src: `(setq s "a\"b")`,
			expect: []*Token{
				{Kind: TokenSetq, Text: "(setq"},
				{Kind: TokenSymbol, Text: "s"},
				{Kind: TokenString, Text: `a"b`},
				{Kind: TokenRightRound, Text: ")"},
			},
		},
		{
			src: `(defn f [a] "doc" (+ a 1))`,
			expect: []*Token{
				{Kind: TokenDefn, Text: "(defn"},
				{Kind: TokenSymbol, Text: "f"},
				{Kind: TokenLeftSquare, Text: "["},
				{Kind: TokenSymbol, Text: "a"},
				{Kind: TokenRightSquare, Text: "]"},
				{Kind: TokenDocString, Text: "doc"},
				{Kind: TokenLeftRound, Text: "("},
				{Kind: TokenSymbol, Text: "+"},
				{Kind: TokenSymbol, Text: "a"},
				{Kind: TokenInteger, Text: "1"},
				{Kind: TokenRightRound, Text: ")"},
				{Kind: TokenRightRound, Text: ")"},
			},
		},
		{
			src: "(if true -1 false) ;; comment\n[x]",
			expect: []*Token{
				{Kind: TokenIf, Text: "(if"},
				{Kind: TokenBool, Text: "true"},
				{Kind: TokenInteger, Text: "-1"},
				{Kind: TokenBool, Text: "false"},
				{Kind: TokenRightRound, Text: ")"},
				{Kind: TokenLeftSquare, Text: "["},
				{Kind: TokenSymbol, Text: "x"},
				{Kind: TokenRightSquare, Text: "]"},
			},
		},
		{
			// keywords need a delimiter after them
			src: "(iffy) (defn2)",
			expect: []*Token{
				{Kind: TokenLeftRound, Text: "("},
				{Kind: TokenSymbol, Text: "iffy"},
				{Kind: TokenRightRound, Text: ")"},
				{Kind: TokenLeftRound, Text: "("},
				{Kind: TokenSymbol, Text: "defn2"},
				{Kind: TokenRightRound, Text: ")"},
			},
		},
		{
			// a single semicolon is part of a word
			src: "(+ 1 ;2) ;x",
			expect: []*Token{
				{Kind: TokenLeftRound, Text: "("},
				{Kind: TokenSymbol, Text: "+"},
				{Kind: TokenInteger, Text: "1"},
				{Kind: TokenSymbol, Text: ";2"},
				{Kind: TokenRightRound, Text: ")"},
				{Kind: TokenSymbol, Text: ";x"},
			},
		},
		{
			src: "99999999999999999999",
			expect: []*Token{
				{Kind: TokenInteger, Text: "99999999999999999999"},
			},
		},
		{
			src:    "  ;; only a comment",
			expect: nil,
		},
	} {
		got := tokenize(t, c.src)
		if diff := cmp.Diff(c.expect, got, ignorePos); diff != "" {
			t.Fatalf("%s: %s", c.src, diff)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := tokenize(t, "(+ 1\n  foo)")
	foo := tokens[3]
	if foo.Text != "foo" {
		t.Fatalf("got %v", foo)
	}
	if foo.Pos.Line != 2 || foo.Pos.Column != 3 || foo.Pos.End != 6 {
		t.Fatalf("got %+v", foo.Pos)
	}
	if s := foo.Pos.String(); s != "test:2:3" {
		t.Fatalf("got %s", s)
	}

	semi := tokenize(t, ";x")
	if len(semi) != 1 || semi[0].Text != ";x" || semi[0].Pos.Column != 1 || semi[0].Pos.End != 3 {
		t.Fatalf("got %+v", semi)
	}

	kw := tokenize(t, "(setq a 1)")[0]
	if kw.Pos.Column != 1 || kw.Pos.End != 6 {
		t.Fatalf("got %+v", kw.Pos)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, c := range []struct {
		src   string
		err   error
		token string
	}{
		{`(setq s "abc`, ErrUnterminatedString, "abc"},
		{`"abc\`, ErrUnterminatedString, "abc"},
		{"(+ 1 \x01)", ErrInvalidCharacter, "\x01"},
	} {
		_, err := Tokenize(NewSource("test", c.src))
		if !errors.Is(err, c.err) {
			t.Fatalf("%q: got %v", c.src, err)
		}
		var tokErr *TokenError
		if !errors.As(err, &tokErr) {
			t.Fatalf("got %T", err)
		}
		if tokErr.Phase != PhaseLex {
			t.Fatalf("got %v", tokErr.Phase)
		}
		if tokErr.Token.Text != c.token {
			t.Fatalf("got %q", tokErr.Token.Text)
		}
	}
}

func TestTokenizerStream(t *testing.T) {
	tokenizer := NewTokenizer(NewSource("", "a b"))
	var texts []string
	for {
		tok, err := tokenizer.Current()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind == TokenEOF {
			break
		}
		// Current is idempotent until Consume
		again, _ := tokenizer.Current()
		if again != tok {
			t.Fatal("expected the same token")
		}
		texts = append(texts, tok.Text)
		tokenizer.Consume()
	}
	if diff := cmp.Diff([]string{"a", "b"}, texts); diff != "" {
		t.Fatal(diff)
	}
}

func TestSliceTokenStream(t *testing.T) {
	tokens := tokenize(t, "(+ 1 2)")
	stream := NewSliceTokenStream(tokens)
	if stream.Remaining() != 5 {
		t.Fatalf("got %d", stream.Remaining())
	}
	for range tokens {
		stream.Consume()
	}
	tok, err := stream.Current()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenEOF {
		t.Fatalf("got %v", tok.Kind)
	}
	if tok.Pos.Column != 8 {
		t.Fatalf("got %+v", tok.Pos)
	}
	stream.Consume()
	if stream.Remaining() != 0 {
		t.Fatalf("got %d", stream.Remaining())
	}
}
