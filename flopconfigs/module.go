package flopconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/flop/configs"
	"github.com/reusee/flop/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
