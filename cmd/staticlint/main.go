// Command staticlint runs static analyzers over munin-statsd sources.
// Build and run it from the repository root:
//
//	go build -o staticlint ./cmd/staticlint
//	./staticlint ./...
//
// Besides the standard and staticcheck analyzers it runs exitcall,
// which keeps os.Exit and Fatal logger calls in package main only.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/gostuding/munin-statsd/cmd/staticlint/analyzers"
)

func main() {
	multichecker.Main(analyzers.GetAnalyzers()...)
}
