package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/reusee/flop/debugs"
	"github.com/reusee/flop/flop"
	"github.com/reusee/flop/flopconfigs"
	"github.com/reusee/flop/logs"
)

// Session is one environment that persists across inputs, with the writers results and diagnostics go to.
type Session struct {
	env     *flop.Environment
	out     io.Writer
	printer *Printer
	prompt  string

	logger  logs.Logger
	newSpan logs.NewSpan
	tap     debugs.Tap
}

// NewSession creates a session and evaluates the configured preload files into it.
type NewSession func(ctx context.Context, out io.Writer, errOut io.Writer) (*Session, error)

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	maxDepth flopconfigs.MaxDepth,
	color flopconfigs.Color,
	prompt flopconfigs.Prompt,
	getPreload flopconfigs.GetPreload,
) NewSession {
	return func(ctx context.Context, out io.Writer, errOut io.Writer) (*Session, error) {
		env := flop.NewEnvironment()
		env.MaxDepth = int(maxDepth)

		session := &Session{
			env:     env,
			out:     out,
			printer: NewPrinter(errOut, bool(color)),
			prompt:  string(prompt),
			logger:  logger,
			newSpan: newSpan,
			tap:     tap,
		}

		preload, err := getPreload()
		if err != nil {
			return nil, err
		}
		for _, path := range preload {
			if err := session.RunFile(ctx, path); err != nil {
				return nil, err
			}
		}

		return session, nil
	}
}

func (s *Session) Env() *flop.Environment {
	return s.env
}

// Run evaluates the forms of src one at a time, printing each non-void
// result. It stops at the first error; forms before it stay in effect.
func (s *Session) Run(ctx context.Context, name string, src string) error {
	ctx, _ = s.newSpan(ctx, "", name)

	parser := flop.NewParser(flop.NewTokenizer(flop.NewSource(name, src)))
	parser.MaxDepth = s.env.MaxDepth
	for {
		node, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			s.logFailure(ctx, err)
			return err
		}

		t0 := time.Now()
		result, err := s.env.Evaluate(node)
		if err != nil {
			s.logFailure(ctx, err)
			return err
		}
		s.logger.DebugContext(ctx, "form",
			"kind", nodeKind(node),
			"duration", time.Since(t0),
		)

		if !result.IsVoid() {
			if _, err := fmt.Fprintln(s.out, result); err != nil {
				return err
			}
		}
	}
}

func (s *Session) RunFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.Run(ctx, path, string(content))
}

// RunReader runs everything r yields as one source unit.
func (s *Session) RunReader(ctx context.Context, name string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return s.Run(ctx, name, string(content))
}

// Report renders err as a diagnostic.
func (s *Session) Report(err error) {
	s.printer.Report(err)
}

func (s *Session) logFailure(ctx context.Context, err error) {
	var tokErr *flop.TokenError
	if errors.As(err, &tokErr) {
		s.logger.DebugContext(ctx, "form failed",
			"phase", tokErr.Phase.String(),
			"error", tokErr.Message(),
		)
		return
	}
	s.logger.DebugContext(ctx, "form failed",
		"error", err,
	)
}

func nodeKind(node flop.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*flop.")
}
