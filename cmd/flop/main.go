package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/flopconfigs"
	"github.com/reusee/flop/logs"
	"github.com/reusee/flop/modes"
	"github.com/reusee/flop/sessions"
	"golang.org/x/term"
)

// input is a file path or, for -eval, source text.
type input struct {
	path string
	src  string
}

var inputs []input

var replFlag = cmds.Switch("-repl").
	Desc("start the REPL after evaluating other inputs")

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		inputs = append(inputs, input{path: path})
	}).Desc("evaluate a file"))
	cmds.Define("-eval", cmds.Func(func(src string) {
		inputs = append(inputs, input{src: src})
	}).Desc("evaluate source text").Alias("-e"))
}

func main() {
	cmds.GlobalExecutor.Fallback = func(word string) error {
		inputs = append(inputs, input{path: word})
		return nil
	}
	cmds.Execute(os.Args[1:])

	ctx := context.Background()
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		logger logs.Logger,
		newSession sessions.NewSession,
		historyFile flopconfigs.HistoryFile,
		color flopconfigs.Color,
	) {
		session, err := newSession(ctx, os.Stdout, os.Stderr)
		if err != nil {
			sessions.NewPrinter(os.Stderr, bool(color)).Report(err)
			code = 1
			return
		}

		for i, in := range inputs {
			if in.path != "" {
				err = session.RunFile(ctx, in.path)
			} else {
				err = session.Run(ctx, fmt.Sprintf("<eval:%d>", i+1), in.src)
			}
			if err != nil {
				session.Report(err)
				code = 1
				return
			}
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		switch {
		case replFlag.Get(), len(inputs) == 0 && interactive:
			lines := sessions.NewReadline(string(historyFile))
			defer lines.Close()
			if err := session.REPL(ctx, lines); err != nil {
				logger.Error("repl", "error", err)
				code = 1
			}
		case len(inputs) == 0:
			if err := session.RunReader(ctx, "<stdin>", os.Stdin); err != nil {
				session.Report(err)
				code = 1
			}
		}
	})

	os.Exit(code)
}
