package storage

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// RunRegistry keeps run history in memory.
type RunRegistry struct {
	runs map[uuid.UUID]*SimulationRun
	mu   sync.RWMutex
}

func NewRunRegistry() *RunRegistry {
	return &RunRegistry{
		runs: make(map[uuid.UUID]*SimulationRun),
	}
}

func (r *RunRegistry) Save(run *SimulationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.ID] = run
	return nil
}

func (r *RunRegistry) Get(id uuid.UUID) (*SimulationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, ErrRunNotFound
	}
	return run, nil
}

func (r *RunRegistry) List() ([]*SimulationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := make([]*SimulationRun, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}
