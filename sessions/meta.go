package sessions

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/reusee/flop/debugs"
	"github.com/reusee/flop/flop"
)

const help = `forms:
  (setq name value)                bind a variable to an integer, string or bool
  (defn name [params] "doc" body)  define a function
  (if cond then else)              evaluate one branch
  (+ - * / a b ...)                integer arithmetic, folded left
  (= == > >= < <= a b ...)         integer comparison
  [a b ...]                        list of literals
  ;; comment

commands:
  :help                            show this message
  :env                             list functions and variables
  :ast <forms>                     dump the syntax tree of forms
  :tap                             open a starlark shell with eval(src) bound to this session
  exit, quit                       leave
`

var astDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func (s *Session) meta(ctx context.Context, line string, lines LineReader) error {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {

	case ":help":
		_, err := io.WriteString(s.out, help)
		return err

	case ":env":
		return s.printEnv()

	case ":ast":
		return s.dumpAST(arg)

	case ":tap":
		if r, ok := lines.(suspender); ok {
			if err := r.Suspend(); err != nil {
				return err
			}
		}
		s.tap(ctx, "session", s.tapGlobals())
		return nil

	}

	return fmt.Errorf("unknown command %s, try :help", command)
}

func (s *Session) printEnv() error {
	for _, name := range s.env.FunctionNames() {
		def, _ := s.env.Function(name)
		params := make([]string, 0, len(def.Parameters))
		for _, param := range def.Parameters {
			params = append(params, param.Text)
		}
		if _, err := fmt.Fprintf(s.out, "%s [%s] %q\n", name, strings.Join(params, " "), def.DocString.Text); err != nil {
			return err
		}
	}
	for _, name := range s.env.VariableNames() {
		binding, _ := s.env.Variable(name)
		if _, err := fmt.Fprintf(s.out, "%s = %s\n", name, binding.Definition.Value); err != nil {
			return err
		}
	}
	return nil
}

// dumpAST prints the trees of src without source back-references.
func (s *Session) dumpAST(src string) error {
	tokens, err := flop.Tokenize(flop.NewSource("<ast>", src))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		tok.Pos.Source = nil
	}

	parser := flop.NewParser(flop.NewSliceTokenStream(tokens))
	parser.MaxDepth = s.env.MaxDepth
	for {
		node, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		astDumper.Fdump(s.out, node)
	}
}

func (s *Session) tapGlobals() map[string]any {
	variables := make(map[string]any)
	for _, name := range s.env.VariableNames() {
		binding, _ := s.env.Variable(name)
		variables[name] = binding.Definition.Value.String()
	}
	return map[string]any{
		"functions": s.env.FunctionNames(),
		"variables": variables,
		"eval": debugs.EvalFunc(func(src string) (any, error) {
			result, err := s.env.EvaluateStream(
				flop.NewTokenizer(flop.NewSource("<tap>", src)),
			)
			if err != nil {
				return nil, err
			}
			return result, nil
		}),
	}
}
