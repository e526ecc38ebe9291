package flop

import "io"

const DefaultMaxDepth = 10000

type Parser struct {
	stream   TokenStream
	depth    int
	MaxDepth int
}

func NewParser(stream TokenStream) *Parser {
	return &Parser{
		stream:   stream,
		MaxDepth: DefaultMaxDepth,
	}
}

// Parse reads exactly one form; any token left after it is an error.
func Parse(stream TokenStream) (Node, error) {
	p := NewParser(stream)
	node, err := p.Next()
	if err == io.EOF {
		tok, _ := stream.Current()
		return nil, newError(PhaseParse, ErrUnexpectedEOF, tok, "empty input")
	}
	if err != nil {
		return nil, err
	}
	tok, err := stream.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, newError(PhaseParse, ErrExtraTokens, tok, "after %s", node)
	}
	return node, nil
}

// Next reads the next top-level form. It returns io.EOF when the stream is exhausted.
func (p *Parser) Next() (Node, error) {
	tok, err := p.stream.Current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenEOF:
		return nil, io.EOF
	case TokenSetq:
		return p.parseVariableDefinition()
	case TokenDefn:
		return p.parseFunctionDefinition()
	case TokenLeftSquare:
		return p.parseList()
	case TokenLeftRound:
		return p.parseCall()
	case TokenIf:
		return p.parseConditional()
	case TokenSymbol:
		p.stream.Consume()
		return &VariableCall{Name: tok}, nil
	case TokenInteger, TokenString, TokenBool:
		p.stream.Consume()
		return &Literal{Value: tok}, nil
	case TokenRightRound, TokenRightSquare:
		return nil, newError(PhaseParse, ErrUnbalanced, tok, "unmatched %s", tok.Kind)
	}

	return nil, newError(PhaseParse, ErrUnexpectedToken, tok, "%s at top level", tok.Kind)
}

func (p *Parser) enter(tok *Token) error {
	p.depth++
	if p.MaxDepth > 0 && p.depth > p.MaxDepth {
		return newError(PhaseParse, ErrDepthExceeded, tok, "nesting deeper than %d", p.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// pop consumes the current token. EOF is reported as unexpected with what as the context.
func (p *Parser) pop(what string) (*Token, error) {
	tok, err := p.stream.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF {
		return nil, newError(PhaseParse, ErrUnexpectedEOF, tok, "expected %s", what)
	}
	p.stream.Consume()
	return tok, nil
}

// close consumes the ) ending the keyword form opened by open.
func (p *Parser) close(open *Token) error {
	tok, err := p.stream.Current()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case TokenRightRound:
		p.stream.Consume()
		return nil
	case TokenEOF:
		return newError(PhaseParse, ErrUnbalanced, open, "unterminated %s", open.Text)
	}
	return newError(PhaseParse, ErrExpectedBracket, tok, "expected ) to close %s, got %s", open.Text, tok.Kind)
}

func (p *Parser) parseVariableDefinition() (Node, error) {
	keyword, err := p.pop("setq")
	if err != nil {
		return nil, err
	}

	name, err := p.pop("variable name")
	if err != nil {
		return nil, err
	}
	if name.Kind != TokenSymbol {
		return nil, newError(PhaseParse, ErrExpectedSymbol, name, "variable name must be a symbol, got %s", name.Kind)
	}

	value, err := p.pop("variable value")
	if err != nil {
		return nil, err
	}
	switch value.Kind {
	case TokenInteger, TokenBool, TokenString:
	default:
		return nil, newError(PhaseParse, ErrInvalidAssignment, value, "expected an integer, bool or string, got %s", value.Kind)
	}

	if err := p.close(keyword); err != nil {
		return nil, err
	}

	return &VariableDefinition{
		Keyword: keyword,
		Name:    name,
		Value:   &Literal{Value: value},
	}, nil
}

func (p *Parser) parseList() (Node, error) {
	open, err := p.pop("[")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	list := &List{
		Open:  open,
		Items: []Node{},
	}
	for {
		tok, err := p.stream.Current()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind.IsScalar():
			p.stream.Consume()
			list.Items = append(list.Items, &Literal{Value: tok})
		case tok.Kind == TokenLeftSquare:
			item, err := p.parseList()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
		case tok.Kind == TokenRightSquare:
			p.stream.Consume()
			return list, nil
		case tok.Kind == TokenEOF:
			return nil, newError(PhaseParse, ErrUnbalanced, open, "unterminated list")
		default:
			return nil, newError(PhaseParse, ErrUnexpectedToken, tok, "%s in list", tok.Kind)
		}
	}
}

func (p *Parser) parseFunctionDefinition() (Node, error) {
	keyword, err := p.pop("defn")
	if err != nil {
		return nil, err
	}

	name, err := p.pop("function name")
	if err != nil {
		return nil, err
	}
	if name.Kind != TokenSymbol {
		return nil, newError(PhaseParse, ErrExpectedSymbol, name, "function name must be a symbol, got %s", name.Kind)
	}

	open, err := p.pop("[")
	if err != nil {
		return nil, err
	}
	if open.Kind != TokenLeftSquare {
		return nil, newError(PhaseParse, ErrExpectedBracket, open, "parameter list must start with [, got %s", open.Kind)
	}

	params := []*Token{}
	seen := make(map[string]bool)
	for {
		tok, err := p.stream.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRightSquare {
			p.stream.Consume()
			break
		}
		if tok.Kind == TokenEOF {
			return nil, newError(PhaseParse, ErrUnbalanced, open, "unterminated parameter list")
		}
		if tok.Kind != TokenSymbol {
			return nil, newError(PhaseParse, ErrExpectedSymbol, tok, "parameter must be a symbol, got %s", tok.Kind)
		}
		if seen[tok.Text] {
			return nil, newError(PhaseParse, ErrDuplicateParameter, tok, "%s", tok.Text)
		}
		seen[tok.Text] = true
		params = append(params, tok)
		p.stream.Consume()
	}

	doc, err := p.pop("docstring")
	if err != nil {
		return nil, err
	}
	if doc.Kind != TokenDocString {
		return nil, newError(PhaseParse, ErrExpectedDocString, doc, "after parameter list of %s", name.Text)
	}

	tok, err := p.stream.Current()
	if err != nil {
		return nil, err
	}
	var body Node
	switch tok.Kind {
	case TokenLeftRound:
		body, err = p.parseCall()
	case TokenIf:
		body, err = p.parseConditional()
	case TokenEOF:
		return nil, newError(PhaseParse, ErrUnexpectedEOF, tok, "expected body of %s", name.Text)
	default:
		return nil, newError(PhaseParse, ErrExpectedBracket, tok, "function body must start with (, got %s", tok.Kind)
	}
	if err != nil {
		return nil, err
	}
	if err := p.close(keyword); err != nil {
		return nil, err
	}

	return &FunctionDefinition{
		Keyword:    keyword,
		Name:       name,
		Parameters: params,
		DocString:  doc,
		Body:       body,
	}, nil
}

func (p *Parser) parseCall() (Node, error) {
	open, err := p.pop("(")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	name, err := p.stream.Current()
	if err != nil {
		return nil, err
	}
	switch name.Kind {
	case TokenSymbol:
		p.stream.Consume()
	case TokenEOF:
		return nil, newError(PhaseParse, ErrUnbalanced, open, "unterminated expression")
	default:
		return nil, newError(PhaseParse, ErrExpectedSymbol, name, "function name must be a symbol, got %s", name.Kind)
	}

	call := &FunctionCall{
		Name:      name,
		Arguments: []Node{},
	}
	for {
		tok, err := p.stream.Current()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenRightRound:
			p.stream.Consume()
			return call, nil
		case TokenEOF:
			return nil, newError(PhaseParse, ErrUnbalanced, open, "unterminated expression")
		case TokenRightSquare:
			return nil, newError(PhaseParse, ErrUnbalanced, tok, "unmatched ] in call to %s", name.Text)
		}
		arg, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)
	}
}

// parseOperand reads one argument-position expression.
func (p *Parser) parseOperand() (Node, error) {
	tok, err := p.stream.Current()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenInteger, TokenString, TokenBool, TokenDocString:
		p.stream.Consume()
		return &Literal{Value: tok}, nil
	case TokenSymbol:
		p.stream.Consume()
		return &VariableCall{Name: tok}, nil
	case TokenLeftRound:
		return p.parseCall()
	case TokenLeftSquare:
		return p.parseList()
	case TokenIf:
		return p.parseConditional()
	case TokenEOF:
		return nil, newError(PhaseParse, ErrUnexpectedEOF, tok, "expected an expression")
	}
	return nil, newError(PhaseParse, ErrUnexpectedToken, tok, "%s is not allowed here", tok.Kind)
}

func (p *Parser) parseConditional() (Node, error) {
	keyword, err := p.pop("if")
	if err != nil {
		return nil, err
	}
	if err := p.enter(keyword); err != nil {
		return nil, err
	}
	defer p.leave()

	var parts [3]Node
	for i, what := range []string{"condition", "true branch", "false branch"} {
		tok, err := p.stream.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return nil, newError(PhaseParse, ErrUnexpectedEOF, keyword, "conditional is missing its %s", what)
		}
		parts[i], err = p.parseOperand()
		if err != nil {
			return nil, err
		}
	}
	if err := p.close(keyword); err != nil {
		return nil, err
	}

	return &Conditional{
		Keyword:   keyword,
		Condition: parts[0],
		Then:      parts[1],
		Else:      parts[2],
	}, nil
}
