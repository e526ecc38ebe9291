package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/flop/debugs"
	"github.com/reusee/flop/flopconfigs"
	"github.com/reusee/flop/logs"
)

type Module struct {
	dscope.Module
	Configs flopconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
