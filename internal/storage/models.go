package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("simulation run not found")

// SimulationRun is one persisted simulation: headline metrics in columns, the
// full result as JSON.
type SimulationRun struct {
	ID                    uuid.UUID       `json:"id" db:"id"`
	Algorithm             string          `json:"algorithm" db:"algorithm"`
	ProcessCount          int             `json:"process_count" db:"process_count"`
	TotalTime             int             `json:"total_time" db:"total_time"`
	AverageWaitingTime    float64         `json:"average_waiting_time" db:"average_waiting_time"`
	AverageTurnaroundTime float64         `json:"average_turnaround_time" db:"average_turnaround_time"`
	Throughput            float64         `json:"throughput" db:"throughput"`
	Result                json.RawMessage `json:"result" db:"result"`
	CreatedAt             time.Time       `json:"created_at" db:"created_at"`
}

// RunStore is the run-history backend; Postgres when configured, in-memory
// otherwise.
type RunStore interface {
	Save(run *SimulationRun) error
	Get(id uuid.UUID) (*SimulationRun, error)
	List() ([]*SimulationRun, error)
}
