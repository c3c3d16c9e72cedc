package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/vunk-lang/vunk/cmds"
	"github.com/vunk-lang/vunk/debugs"
	"github.com/vunk-lang/vunk/logs"
	"github.com/vunk-lang/vunk/modes"
	"github.com/vunk-lang/vunk/vars"
	"github.com/vunk-lang/vunk/vunkconfigs"
	"github.com/vunk-lang/vunk/vunklex"
)

var ce = e5.Check.With(e5.WrapStacktrace)

var jsonFlag = cmds.Switch("-json")

func main() {
	scope := dscope.New(
		new(vunkconfigs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	cmds.Define("tokenize", cmds.Func(func(path *string) {
		scope.Call(func(
			keepComments vunkconfigs.KeepComments,
			maxDiagnostics vunkconfigs.MaxDiagnostics,
			newSpan logs.NewSpan,
			logger logs.Logger,
		) {
			ctx, _ := newSpan(context.Background(), "")
			source := readSource(vars.DerefOrZero(path))
			tokens, diags := scanSource(source, bool(keepComments))
			logger.InfoContext(ctx, "scan",
				"source", source.Name,
				"tokens", len(tokens),
				"diagnostics", len(diags),
			)
			if *jsonFlag {
				printJSON(tokens, diags)
			} else {
				for _, tok := range tokens {
					fmt.Printf("%s\t%q\t%s\n", tok.Kind, tok.Text, tok.Span)
				}
			}
			reportDiagnostics(diags, int(maxDiagnostics))
		})
	}).Desc("print the token stream of a file ('-' for stdin)"))

	cmds.Define("check", cmds.Func(func(path *string) {
		scope.Call(func(
			maxDiagnostics vunkconfigs.MaxDiagnostics,
		) {
			source := readSource(vars.DerefOrZero(path))
			_, diags := vunklex.Scan(source)
			reportDiagnostics(diags, int(maxDiagnostics))
			if len(diags) > 0 {
				os.Exit(1)
			}
		})
	}).Desc("scan a file and report lexical errors only"))

	cmds.Define("repl", cmds.Func(func(path *string) {
		scope.Call(func(
			tap debugs.Tap,
		) {
			source := readSource(vars.DerefOrZero(path))
			tokens, diags := vunklex.Scan(source)
			tap(context.Background(), "scan "+source.Name, map[string]any{
				"source":      source.Content,
				"tokens":      tokens,
				"diagnostics": diags,
				"rescan": func(content string) []vunklex.Token {
					toks, _ := vunklex.Scan(vunklex.NewSource("repl", content))
					return toks
				},
			})
		})
	}).Desc("inspect a scan in a starlark repl"))

	if len(os.Args) < 2 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
	cmds.Execute(os.Args[1:])
}

func readSource(path string) *vunklex.Source {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		return vunklex.NewSource("stdin", string(content))
	}
	content, err := os.ReadFile(path)
	ce(err)
	return vunklex.NewSource(path, string(content))
}

func scanSource(source *vunklex.Source, keepComments bool) ([]vunklex.Token, []vunklex.Diagnostic) {
	if keepComments {
		return vunklex.ScanAll(source)
	}
	return vunklex.Scan(source)
}

func reportDiagnostics(diags []vunklex.Diagnostic, max int) {
	for i, diag := range diags {
		if i >= max {
			fmt.Fprintf(os.Stderr, "... and %d more\n", len(diags)-i)
			break
		}
		fmt.Fprint(os.Stderr, diag.Error())
	}
}

func printJSON(tokens []vunklex.Token, diags []vunklex.Diagnostic) {
	type tokenInfo struct {
		Kind  string `json:"kind"`
		Text  string `json:"text"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}
	type diagInfo struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
		Start   int    `json:"start"`
		End     int    `json:"end"`
	}
	out := struct {
		Tokens      []tokenInfo `json:"tokens"`
		Diagnostics []diagInfo  `json:"diagnostics"`
	}{}
	for _, tok := range tokens {
		out.Tokens = append(out.Tokens, tokenInfo{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	for _, diag := range diags {
		out.Diagnostics = append(out.Diagnostics, diagInfo{
			Kind:    diag.Kind.String(),
			Message: diag.Message,
			Start:   diag.Span.Start,
			End:     diag.Span.End,
		})
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	ce(encoder.Encode(out))
}
