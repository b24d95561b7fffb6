package callgraph

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Snapshot is a point-in-time copy of the registry's function list and
// statistics, safe to read while tracking continues.
type Snapshot struct {
	Taken     time.Time                `json:"taken"`
	Functions []CallRecord             `json:"functions"`
	Stats     map[string]FunctionStats `json:"stats"`
}

// Snapshot copies the function list and statistics under one lock epoch.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Taken:     time.Now(),
		Functions: make([]CallRecord, len(r.functions)),
		Stats:     make(map[string]FunctionStats, len(r.stats)),
	}
	copy(snap.Functions, r.functions)
	for name, st := range r.stats {
		cp := *st
		cp.Sources = append([]CallRecord(nil), st.Sources...)
		snap.Stats[name] = cp
	}
	return snap
}

// Save writes the snapshot to a JSON file for offline rendering.
func (s Snapshot) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse snapshot: %w", err)
	}
	return s, nil
}
