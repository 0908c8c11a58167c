// Package exitcall contains an Analyzer that finds process exit calls
// outside package main. Library packages return errors, only the command
// decides when the process stops. Test files are not checked.
package exitcall

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"
)

const (
	mainPkg    = "main"
	testSuffix = "_test.go"
)

// exitFuncs are full names of functions, which stop the process.
var exitFuncs = map[string]bool{
	"os.Exit":                                  true,
	"log.Fatal":                                true,
	"log.Fatalf":                               true,
	"log.Fatalln":                              true,
	"(*log.Logger).Fatal":                      true,
	"(*log.Logger).Fatalf":                     true,
	"(*log.Logger).Fatalln":                    true,
	"(*go.uber.org/zap.Logger).Fatal":          true,
	"(*go.uber.org/zap.SugaredLogger).Fatal":   true,
	"(*go.uber.org/zap.SugaredLogger).Fatalf":  true,
	"(*go.uber.org/zap.SugaredLogger).Fatalw":  true,
	"(*go.uber.org/zap.SugaredLogger).Fatalln": true,
}

// Analyzer reports exit calls.
var Analyzer = &analysis.Analyzer{
	Name: "exitcall",
	Doc:  "reports os.Exit and Fatal logger calls outside package main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == mainPkg {
		return nil, nil
	}
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.Position(file.Pos()).Filename, testSuffix) {
			continue
		}
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}
			fn, _ := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
			if fn != nil && exitFuncs[fn.FullName()] {
				pass.Reportf(call.Pos(), "call of %s outside package main", fn.FullName())
			}
			return true
		})
	}
	return nil, nil
}
