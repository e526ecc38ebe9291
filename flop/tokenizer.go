package flop

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var keywords = []struct {
	text string
	kind TokenKind
}{
	{"defn", TokenDefn},
	{"setq", TokenSetq},
	{"if", TokenIf},
}

type Tokenizer struct {
	source  *Source
	reader  *bufio.Reader
	current *Token
	last    TokenKind

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		reader: bufio.NewReader(strings.NewReader(source.Content)),
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize reads the whole source. A string right after a closed parameter
// list becomes a docstring.
func Tokenize(source *Source) ([]*Token, error) {
	t := NewTokenizer(source)
	var tokens []*Token
	for {
		tok, err := t.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
		t.Consume()
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

// unreadRune must directly follow readRune, with no Peek in between.
func (t *Tokenizer) unreadRune() {
	if err := t.reader.UnreadRune(); err != nil {
		panic(err)
	}
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		tok, err := t.parseNext()
		if err != nil {
			return nil, err
		}
		t.current = tok
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	if t.current != nil {
		t.last = t.current.Kind
	}
	t.current = nil
}

func (t *Tokenizer) token(kind TokenKind, text string, start Pos) *Token {
	start.End = t.currPos.Column
	if t.currPos.Line != start.Line {
		start.End = start.Column + 1
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  start,
	}
}

func (t *Tokenizer) parseNext() (*Token, error) {
	for {
		t.skipWhitespace()
		startPos := t.currPos

		if bs, _ := t.reader.Peek(2); string(bs) == ";;" {
			t.skipComment()
			continue
		}

		r, err := t.readRune()
		if err == io.EOF {
			startPos.End = startPos.Column + 1
			return &Token{Kind: TokenEOF, Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case r == '(':
			if kind, text, ok := t.parseKeyword(); ok {
				return t.token(kind, text, startPos), nil
			}
			return t.token(TokenLeftRound, "(", startPos), nil

		case r == ')':
			return t.token(TokenRightRound, ")", startPos), nil

		case r == '[':
			return t.token(TokenLeftSquare, "[", startPos), nil

		case r == ']':
			return t.token(TokenRightSquare, "]", startPos), nil

		case r == '"':
			return t.parseString(startPos)
		}

		if !unicode.IsGraphic(r) {
			tok := t.token(TokenInvalid, string(r), startPos)
			return nil, newError(PhaseLex, ErrInvalidCharacter, tok, "%q", r)
		}

		t.unreadRune()
		return t.parseWord()
	}
}

// parseKeyword consumes a keyword directly following an opening bracket.
func (t *Tokenizer) parseKeyword() (TokenKind, string, bool) {
	for _, kw := range keywords {
		bs, _ := t.reader.Peek(len(kw.text) + 1)
		if len(bs) < len(kw.text) || string(bs[:len(kw.text)]) != kw.text {
			continue
		}
		if len(bs) > len(kw.text) && !isDelimiter(rune(bs[len(kw.text)])) {
			continue
		}
		for range kw.text {
			if _, err := t.readRune(); err != nil {
				return 0, "", false
			}
		}
		return kw.kind, "(" + kw.text, true
	}
	return 0, "", false
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '[' || r == ']' || r == '"'
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			return
		}
	}
}

func (t *Tokenizer) parseWord() (*Token, error) {
	startPos := t.currPos
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isDelimiter(r) {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	word := sb.String()

	kind := TokenSymbol
	switch word {
	case "true", "false":
		kind = TokenBool
	default:
		if _, err := strconv.ParseInt(word, 10, 64); err == nil {
			kind = TokenInteger
		} else if errors.Is(err, strconv.ErrRange) {
			// reported when evaluated
			kind = TokenInteger
		}
	}
	return t.token(kind, word, startPos), nil
}

func (t *Tokenizer) parseString(startPos Pos) (*Token, error) {
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			tok := t.token(TokenInvalid, sb.String(), startPos)
			return nil, newError(PhaseLex, ErrUnterminatedString, tok, "")
		}
		if err != nil {
			return nil, err
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			next, err := t.readRune()
			if err == io.EOF {
				tok := t.token(TokenInvalid, sb.String(), startPos)
				return nil, newError(PhaseLex, ErrUnterminatedString, tok, "")
			}
			if err != nil {
				return nil, err
			}
			switch next {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			default:
				sb.WriteRune('\\')
				sb.WriteRune(next)
			}
			continue
		}
		sb.WriteRune(r)
	}

	kind := TokenString
	if t.last == TokenRightSquare {
		kind = TokenDocString
	}
	return t.token(kind, sb.String(), startPos), nil
}
