package flopconfigs

import (
	"sync"

	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/configs"
)

// GetPreload lists files evaluated into every new session, in order.
type GetPreload func() ([]string, error)

var preloadFlag = cmds.Collect[string]("-preload").
	Desc("evaluate a file before the session starts")

// Lists from lower priority config files come first, then the command line.
func (Module) GetPreload(
	loader configs.Loader,
) GetPreload {
	return sync.OnceValues(func() (ret []string, err error) {
		var lists [][]string
		for list, err := range configs.All[[]string](loader, "preload") {
			if err != nil {
				return nil, err
			}
			lists = append(lists, list)
		}
		for i := len(lists) - 1; i >= 0; i-- {
			ret = append(ret, lists[i]...)
		}
		ret = append(ret, preloadFlag.Get()...)
		return
	})
}
