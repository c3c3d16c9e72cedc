package vunkplay

import "github.com/vunk-lang/vunk/vunklex"

type TokenInfo struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type DiagnosticInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type ScanResult struct {
	Tokens      []TokenInfo      `json:"tokens"`
	Diagnostics []DiagnosticInfo `json:"diagnostics"`
}

func scanSource(name string, content string, keepComments bool) ScanResult {
	source := vunklex.NewSource(name, content)

	var tokens []vunklex.Token
	var diags []vunklex.Diagnostic
	if keepComments {
		tokens, diags = vunklex.ScanAll(source)
	} else {
		tokens, diags = vunklex.Scan(source)
	}

	result := ScanResult{
		Tokens:      make([]TokenInfo, 0, len(tokens)),
		Diagnostics: make([]DiagnosticInfo, 0, len(diags)),
	}
	for _, tok := range tokens {
		result.Tokens = append(result.Tokens, TokenInfo{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	for _, diag := range diags {
		pos := source.PosAt(diag.Span.Start)
		result.Diagnostics = append(result.Diagnostics, DiagnosticInfo{
			Kind:    diag.Kind.String(),
			Message: diag.Message,
			Start:   diag.Span.Start,
			End:     diag.Span.End,
			Line:    pos.Line,
			Column:  pos.Column,
		})
	}
	return result
}
