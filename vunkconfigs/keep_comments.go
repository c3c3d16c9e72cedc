package vunkconfigs

import (
	"github.com/vunk-lang/vunk/cmds"
	"github.com/vunk-lang/vunk/configs"
)

// KeepComments keeps comment trivia in token dumps.
type KeepComments bool

var _ configs.Configurable = KeepComments(false)

func (k KeepComments) ConfigExpr() string {
	return "KeepComments"
}

var keepCommentsFlag = cmds.Switch("-keep-comments")

func (Module) KeepComments(
	loader configs.Loader,
) KeepComments {
	if *keepCommentsFlag {
		return true
	}
	return KeepComments(
		configs.First[bool](loader, "keep_comments"),
	)
}
