package flopconfigs

import (
	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/configs"
)

// Color enables colored diagnostics. Output that is not a terminal is never colored.
type Color bool

var noColorFlag = cmds.Switch("-no-color").
	Desc("disable colored diagnostics")

func (Module) Color(
	loader configs.Loader,
) Color {
	if noColorFlag.Get() {
		return false
	}
	if color := configs.First[*bool](loader, "color"); color != nil {
		return Color(*color)
	}
	return true
}
