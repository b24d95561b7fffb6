package callgraph

import "time"

// Track begins tracking one invocation of the named function and returns the
// closure that completes it, intended for defer:
//
//	defer reg.Track("mypkg.Process")()
//
// The function is registered (or its call counter bumped) and pushed onto the
// active stack before the timer starts; the returned closure records elapsed
// wall time and pops the active entry. Because completion runs in a defer,
// timing is recorded and the active entry removed even when the tracked
// function panics or returns an error.
func (r *Registry) Track(name string) func() {
	rec := CallRecord{Name: name}
	r.Touch(rec)
	r.EnterActive(rec)
	start := time.Now()
	return func() {
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		r.AccumulateTime(rec, elapsed)
		r.ExitActive(rec)
	}
}

// Func0 returns an instrumented version of a function with no arguments and
// no results. An empty name derives the qualified name from the function
// value itself.
func Func0(r *Registry, name string, fn func()) func() {
	if name == "" {
		name = FuncName(fn)
	}
	return func() {
		defer r.Track(name)()
		fn()
	}
}

// Func returns an instrumented version of a result-producing function. The
// result passes through untransformed.
func Func[R any](r *Registry, name string, fn func() R) func() R {
	if name == "" {
		name = FuncName(fn)
	}
	return func() R {
		defer r.Track(name)()
		return fn()
	}
}

// Func1 returns an instrumented version of a one-argument function.
func Func1[A, R any](r *Registry, name string, fn func(A) R) func(A) R {
	if name == "" {
		name = FuncName(fn)
	}
	return func(a A) R {
		defer r.Track(name)()
		return fn(a)
	}
}

// Func2 returns an instrumented version of a two-argument function.
func Func2[A, B, R any](r *Registry, name string, fn func(A, B) R) func(A, B) R {
	if name == "" {
		name = FuncName(fn)
	}
	return func(a A, b B) R {
		defer r.Track(name)()
		return fn(a, b)
	}
}

// FuncErr returns an instrumented version of a fallible one-argument
// function. Failures propagate unchanged to the caller; the wrapper never
// masks or wraps them, and bookkeeping still runs on the error path.
func FuncErr[A, R any](r *Registry, name string, fn func(A) (R, error)) func(A) (R, error) {
	if name == "" {
		name = FuncName(fn)
	}
	return func(a A) (R, error) {
		defer r.Track(name)()
		return fn(a)
	}
}
