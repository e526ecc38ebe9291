package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/flop/flop"
)

const continuationPrompt = "... "

// REPL reads lines until exit, quit or end of input. Errors are reported
// and the loop goes on with the environment as it was before the failing form.
func (s *Session) REPL(ctx context.Context, lines LineReader) error {
	ctx, _ = s.newSpan(ctx, "", "repl")

	var pending strings.Builder
	inputs := 0
	for {
		if pending.Len() > 0 {
			lines.SetPrompt(continuationPrompt)
		} else {
			lines.SetPrompt(s.prompt)
		}

		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			pending.Reset()
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if pending.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
				continue
			case trimmed == "exit" || trimmed == "quit":
				return nil
			case strings.HasPrefix(trimmed, ":"):
				if err := s.meta(ctx, trimmed, lines); err != nil {
					s.Report(err)
				}
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")
		src := pending.String()
		if incomplete(src) {
			continue
		}
		pending.Reset()

		inputs++
		if err := s.Run(ctx, fmt.Sprintf("<repl:%d>", inputs), src); err != nil {
			s.Report(err)
		}
	}
}

// incomplete reports whether src only fails because it ends too early.
func incomplete(src string) bool {
	parser := flop.NewParser(flop.NewTokenizer(flop.NewSource("", src)))
	for {
		_, err := parser.Next()
		if err == io.EOF {
			return false
		}
		if err == nil {
			continue
		}

		var tokErr *flop.TokenError
		if !errors.As(err, &tokErr) {
			return false
		}
		switch {
		case errors.Is(err, flop.ErrUnterminatedString),
			errors.Is(err, flop.ErrUnexpectedEOF):
			return true
		case errors.Is(err, flop.ErrUnbalanced):
			if tokErr.Token == nil {
				return false
			}
			switch tokErr.Token.Kind {
			case flop.TokenLeftRound, flop.TokenLeftSquare,
				flop.TokenDefn, flop.TokenSetq, flop.TokenIf:
				return true
			}
		}
		return false
	}
}
