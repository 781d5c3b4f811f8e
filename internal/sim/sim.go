// Package sim is an offline CPU-scheduling simulator. Given a batch of
// synthetic processes with complete foreknowledge of their burst lengths, it
// computes the timeline and performance metrics each classical policy would
// produce. Time is a discrete, unitless integer axis; nothing here touches
// real OS threads or the wall clock.
//
// Input is assumed pre-validated (see internal/validate). Each run works on
// its own value copy of the batch, so concurrent runs over the same input
// never interfere.
package sim

import (
	"fmt"
	"strings"
	"sync"
)

// Canonical algorithm names, in the comparator's fixed declaration order.
const (
	AlgorithmFCFS       = "FCFS"
	AlgorithmSJF        = "SJF"
	AlgorithmRoundRobin = "RoundRobin"
	AlgorithmPriority   = "Priority"
)

// Algorithms lists the supported policies in comparison order.
var Algorithms = []string{AlgorithmFCFS, AlgorithmSJF, AlgorithmRoundRobin, AlgorithmPriority}

// Schedule runs one policy, selected by case-insensitive name, over its own
// copy of the batch. timeQuantum is only consulted by round robin.
func Schedule(name string, processes []Process, timeQuantum int) (Result, error) {
	switch strings.ToLower(name) {
	case "fcfs":
		return runFCFS(processes), nil
	case "sjf":
		return runSJF(processes), nil
	case "roundrobin", "rr":
		return runRoundRobin(processes, timeQuantum), nil
	case "priority":
		return runPriority(processes), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Comparison names the policy with the minimum average waiting time.
type Comparison struct {
	BestAlgorithm      string  `json:"best_algorithm"`
	AverageWaitingTime float64 `json:"average_waiting_time"`
}

// ComparisonReport bundles the four per-policy results with the comparison
// summary. Results keeps the order of Algorithms.
type ComparisonReport struct {
	Results    []Result   `json:"results"`
	Comparison Comparison `json:"comparison"`
}

// RunAll simulates every policy over the same input and picks the one with
// the lowest average waiting time; ties go to whichever is listed first in
// Algorithms. Runs are data-parallel: each owns an independent copy of the
// batch, so no synchronization beyond the join is needed.
func RunAll(processes []Process, timeQuantum int) ComparisonReport {
	results := make([]Result, len(Algorithms))
	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, name := range Algorithms {
		go func(i int, name string) {
			defer wg.Done()
			result, _ := Schedule(name, processes, timeQuantum)
			results[i] = result
		}(i, name)
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].AverageWaitingTime < results[best].AverageWaitingTime {
			best = i
		}
	}
	return ComparisonReport{
		Results: results,
		Comparison: Comparison{
			BestAlgorithm:      results[best].Algorithm,
			AverageWaitingTime: results[best].AverageWaitingTime,
		},
	}
}
