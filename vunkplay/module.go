package vunkplay

import (
	"github.com/reusee/dscope"
	"github.com/vunk-lang/vunk/logs"
	"github.com/vunk-lang/vunk/vunkconfigs"
)

type Module struct {
	dscope.Module
	Configs vunkconfigs.Module
	Logs    logs.Module
}
