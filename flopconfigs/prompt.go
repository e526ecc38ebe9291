package flopconfigs

import (
	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/configs"
	"github.com/reusee/flop/vars"
)

type Prompt string

const DefaultPrompt = "flop> "

var promptFlag = cmds.Var[string]("-prompt").
	Desc("REPL prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		promptFlag.Get(),
		configs.First[string](loader, "prompt"),
		DefaultPrompt,
	))
}
