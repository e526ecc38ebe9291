package flopconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/flop/cmds"
	"github.com/reusee/flop/configs"
)

// HistoryFile is where the REPL keeps its history. Empty disables history.
type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history-file").
	Desc("REPL history file")

var noHistoryFlag = cmds.Switch("-no-history").
	Desc("do not read or write REPL history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if noHistoryFlag.Get() {
		return ""
	}
	if path := historyFileFlag.Get(); path != "" {
		return HistoryFile(path)
	}
	if path := configs.First[*string](loader, "history_file"); path != nil {
		return HistoryFile(*path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".flop_history"))
}
