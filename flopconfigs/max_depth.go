package flopconfigs

import (
	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/configs"
	"github.com/reusee/flop/flop"
	"github.com/reusee/flop/vars"
)

// MaxDepth bounds parser nesting and evaluator call depth.
type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth").
	Desc("maximum nesting of forms and function calls")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		max(maxDepthFlag.Get(), 0),
		configs.First[int](loader, "max_depth"),
		flop.DefaultMaxDepth,
	))
}
