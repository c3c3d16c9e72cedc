package vunkconfigs

import (
	"math"

	"github.com/vunk-lang/vunk/cmds"
	"github.com/vunk-lang/vunk/configs"
	"github.com/vunk-lang/vunk/vars"
)

// MaxDiagnostics caps how many lexical errors get reported per file.
type MaxDiagnostics int

var _ configs.Configurable = MaxDiagnostics(0)

func (m MaxDiagnostics) ConfigExpr() string {
	return "MaxDiagnostics"
}

var maxDiagnosticsFlag = cmds.Var[int]("-max-diagnostics")

func (Module) MaxDiagnostics(
	loader configs.Loader,
) MaxDiagnostics {
	maxDiagnostics := math.MaxInt

	// flag
	if *maxDiagnosticsFlag != 0 {
		maxDiagnostics = min(maxDiagnostics, *maxDiagnosticsFlag)
	}

	// config
	if n := vars.FirstNonZero(
		configs.First[int](loader, "max_diagnostics"),
	); n != 0 {
		maxDiagnostics = min(maxDiagnostics, n)
	}

	return MaxDiagnostics(maxDiagnostics)
}
