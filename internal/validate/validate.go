// Package validate checks scheduling inputs before they reach the simulator.
// The simulator itself assumes pre-validated input and never re-checks.
package validate

import (
	"fmt"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
)

// Report lists everything wrong with an input; IsValid is true when Errors is
// empty.
type Report struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// Processes rejects empty batches, missing or duplicate ids, negative
// arrivals, and non-positive bursts.
func Processes(processes []sim.Process) Report {
	var errs []string
	if len(processes) == 0 {
		errs = append(errs, "process list is empty")
	}
	seen := make(map[string]bool, len(processes))
	for i, p := range processes {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Sprintf("process %d: missing id", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Sprintf("process %d: duplicate id %q", i, p.ID))
		default:
			seen[p.ID] = true
		}
		if p.ArrivalTime < 0 {
			errs = append(errs, fmt.Sprintf("process %d: negative arrival time %d", i, p.ArrivalTime))
		}
		if p.BurstTime <= 0 {
			errs = append(errs, fmt.Sprintf("process %d: burst time must be positive, got %d", i, p.BurstTime))
		}
	}
	return Report{IsValid: len(errs) == 0, Errors: errs}
}

// Quantum rejects round-robin time quanta that are not strictly positive.
func Quantum(quantum int) Report {
	if quantum <= 0 {
		return Report{Errors: []string{fmt.Sprintf("time quantum must be positive, got %d", quantum)}}
	}
	return Report{IsValid: true}
}
