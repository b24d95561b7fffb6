// Package workload provides a small instrumented workload used by the demo
// command and as living documentation of the wrapper API.
package workload

import (
	"fmt"
	"io"

	"github.com/danpilch/tracegraph/pkg/callgraph"
)

// Demo runs a recursive sum that prints through a sibling tracked function at
// each level, exercising registration, recursion collapsing and source
// inference. It returns the computed sum; printed values go to w.
func Demo(reg *callgraph.Registry, w io.Writer) int {
	printValue := callgraph.Func2(reg, "workload.printValue", func(prefix string, value int) int {
		fmt.Fprintf(w, "%s value = %d\n", prefix, value)
		return value
	})

	var sumRecursive func(a, b int) int
	sumRecursive = callgraph.Func2(reg, "workload.sumRecursive", func(a, b int) int {
		if b > 0 {
			a++
			b--
			printValue("current", a)
			return sumRecursive(a, b)
		}
		printValue("final", a)
		return a
	})

	return sumRecursive(1, 1)
}
