package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/vunk-lang/vunk/cmds"
	"github.com/vunk-lang/vunk/logs"
	"github.com/vunk-lang/vunk/modes"
	"github.com/vunk-lang/vunk/vunkplay"
)

var ce = e5.Check.With(e5.WrapStacktrace)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(vunkplay.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		serve vunkplay.Serve,
		newSpan logs.NewSpan,
	) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		ctx, _ = newSpan(ctx, "")
		ce(serve(ctx))
	})
}
