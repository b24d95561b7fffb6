package callgraph

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Collection names one of the registry's internal collections for Clear.
type Collection int

const (
	Functions Collection = iota
	ActiveStack
	Stats
)

// Registry owns all state collected during one measurement session: the
// ordered list of functions ever seen, the name-keyed stack of functions
// currently executing, and per-function statistics. A single mutex guards
// all three collections; the lock is never held across user code, only over
// short membership checks and arithmetic.
type Registry struct {
	mu        sync.Mutex
	functions []CallRecord
	active    []CallRecord
	stats     map[string]*FunctionStats

	logger *logrus.Logger
}

// New creates an empty registry. A nil logger gets a warn-level default.
func New(logger *logrus.Logger) *Registry {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Registry{
		stats:  make(map[string]*FunctionStats),
		logger: logger,
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, constructing it on first use.
// Exactly one instance is ever created, even under concurrent first access.
// Callers that want an isolated registry per measurement session should use
// New and pass the instance around explicitly.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New(nil)
	})
	return defaultReg
}

// Touch registers rec on first sight or increments its call counter.
//
// First sight appends rec to the function list, creates its statistics entry
// and fixes its source functions from the top of the active stack at that
// instant. Sources are never revisited, even if later invocations arrive
// through a different caller. The check-then-act sequence runs under the
// registry lock, so concurrent first calls cannot double-register or lose an
// increment.
func (r *Registry) Touch(rec CallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.stats[rec.Name]; ok {
		st.Calls++
		return
	}

	st := &FunctionStats{
		Calls:     1,
		FirstSeen: time.Now(),
	}
	if n := len(r.active); n > 0 && r.active[n-1].Name != rec.Name {
		st.Sources = []CallRecord{r.active[n-1]}
	}
	r.functions = append(r.functions, rec)
	r.stats[rec.Name] = st
	r.logger.WithField("function", rec.Name).Debug("Registered function")
}

// EnterActive pushes rec onto the active stack unless an entry with the same
// name is already present, so recursive re-entry collapses to one entry.
func (r *Registry) EnterActive(rec CallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.active {
		if a.Name == rec.Name {
			return
		}
	}
	r.active = append(r.active, rec)
}

// ExitActive removes the active-stack entry matching rec's name. Removing a
// name that is not present is a silent no-op; absence is the expected
// terminal state once an invocation has completed.
func (r *Registry) ExitActive(rec CallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.active {
		if a.Name == rec.Name {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}

// Active returns the names currently on the active stack, oldest first.
func (r *Registry) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.active))
	for i, a := range r.active {
		names[i] = a.Name
	}
	return names
}

// AccumulateTime adds elapsed milliseconds to rec's cumulative time. The
// wrapper always registers before timing, so a missing entry indicates a bug
// in call ordering; it is logged and dropped rather than silently created.
func (r *Registry) AccumulateTime(rec CallRecord, elapsedMS float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stats[rec.Name]
	if !ok {
		r.logger.WithField("function", rec.Name).Error("Time recorded for unregistered function")
		return
	}
	st.CumulativeMS += elapsedMS
}

// Clear empties exactly one collection, leaving the others untouched. Used
// to reset state between independent measurement runs.
func (r *Registry) Clear(c Collection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch c {
	case Functions:
		r.functions = nil
	case ActiveStack:
		r.active = nil
	case Stats:
		r.stats = make(map[string]*FunctionStats)
	}
}

// Reset empties all collections under a single lock epoch.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions = nil
	r.active = nil
	r.stats = make(map[string]*FunctionStats)
}
