package debugs

import (
	"github.com/reusee/dscope"
	"github.com/vunk-lang/vunk/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
