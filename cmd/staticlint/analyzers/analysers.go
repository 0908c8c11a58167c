// Package analyzers collects static analyzers for munin-statsd sources.
// To get the list call
//
//	GetAnalyzers()
//
// The list contains:
//
// Exitcall - reports os.Exit and Fatal logger calls outside package main.
// Printf - checks consistency of Printf format strings and arguments.
// Shadow - checks for shadowed variables.
// Shift - checks for shifts that exceed the width of an integer.
// Structtag - checks struct field tags are well formed (yaml tags of Config).
// Errorsas - checks the second argument of errors.As is a pointer.
// Unusedresult - checks for unused results of calls like fmt.Sprintf.
// Staticcheck - analyzes that find bugs and performance issues (SAxxxx).
// Quickfix - analyzes that implement code refactorings (QF1xxx).
// Simple - analyzes that simplify code (S1xxx).
// Stylecheck - analyzes that enforce style rules (STxxxx).
// Unused - contains code for finding unused code (U1000).
package analyzers

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
	"honnef.co/go/tools/unused"

	"github.com/gostuding/munin-statsd/cmd/staticlint/analyzers/exitcall"
)

// GetAnalyzers creates []*analysis.Analyzer for multichecker.
func GetAnalyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		exitcall.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		structtag.Analyzer,
		errorsas.Analyzer,
		unusedresult.Analyzer,
		unused.Analyzer.Analyzer,
	}
	for _, group := range [][]*lint.Analyzer{
		staticcheck.Analyzers,
		simple.Analyzers,
		quickfix.Analyzers,
		stylecheck.Analyzers,
	} {
		for _, v := range group {
			checks = append(checks, v.Analyzer)
		}
	}
	return checks
}
