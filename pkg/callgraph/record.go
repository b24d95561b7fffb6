// Package callgraph tracks call counts, cumulative wall time and inferred
// caller relationships for functions that explicitly opt in to tracking.
package callgraph

import (
	"reflect"
	"runtime"
	"time"
)

// CallRecord identifies a tracked function by its qualified name. Two records
// refer to the same function exactly when their names are equal.
type CallRecord struct {
	Name string `json:"name"`
}

// FuncName derives the stable qualified name (import path plus function
// identifier) of a function value. Non-function values yield "unknown".
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "unknown"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown"
	}
	return f.Name()
}

// FunctionStats aggregates everything recorded about one tracked function.
type FunctionStats struct {
	Calls        int          `json:"calls"`
	CumulativeMS float64      `json:"cumulative_ms"`
	FirstSeen    time.Time    `json:"first_seen"`
	Sources      []CallRecord `json:"sources,omitempty"`
}
