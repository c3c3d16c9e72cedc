package vunkconfigs

import (
	"github.com/vunk-lang/vunk/cmds"
	"github.com/vunk-lang/vunk/configs"
	"github.com/vunk-lang/vunk/logs"
	"github.com/vunk-lang/vunk/vars"
)

// PlayAddr is the playground server's listen address.
type PlayAddr string

var _ configs.Configurable = PlayAddr("")

func (p PlayAddr) ConfigExpr() string {
	return "PlayAddr"
}

var playAddrFlag = cmds.Var[string]("-play-addr")

func (Module) PlayAddr(
	loader configs.Loader,
	logger logs.Logger,
) (ret PlayAddr) {
	defer func() {
		logger.Info("playground", "addr", ret)
	}()

	return vars.FirstNonZero(
		PlayAddr(*playAddrFlag),
		configs.First[PlayAddr](loader, "play_addr"),
		PlayAddr("localhost:8644"),
	)
}
