// Package generator produces demo and random process batches. It is a test
// and demo fixture; the schedulers never call it.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
)

// Sample returns the fixed five-process demo batch.
func Sample() []sim.Process {
	return []sim.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 3},
		{ID: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 1},
		{ID: "P3", ArrivalTime: 2, BurstTime: 9, Priority: 4},
		{ID: "P4", ArrivalTime: 3, BurstTime: 5, Priority: 2},
		{ID: "P5", ArrivalTime: 4, BurstTime: 2, Priority: 5},
	}
}

// Random returns count processes with arrivals in [0,4], bursts in [1,10] and
// priorities in [1,5].
func Random(count int) []sim.Process {
	procs := make([]sim.Process, count)
	for i := range procs {
		procs[i] = sim.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rand.Intn(5),
			BurstTime:   1 + rand.Intn(10),
			Priority:    1 + rand.Intn(5),
		}
	}
	return procs
}
