package sim

import "sort"

// runFCFS dispatches processes in arrival order, each for its full burst.
// Equal arrivals keep their input order (stable sort), so the first-listed
// process starts first.
func runFCFS(processes []Process) Result {
	procs := cloneProcesses(processes)

	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return procs[order[i]].ArrivalTime < procs[order[j]].ArrivalTime
	})

	currentTime := 0
	busy := make([]GanttSegment, 0, len(procs))
	for _, idx := range order {
		p := &procs[idx]
		if currentTime < p.ArrivalTime {
			currentTime = p.ArrivalTime
		}
		p.StartTime = currentTime
		currentTime += p.BurstTime
		p.RemainingTime = 0
		p.finish(currentTime)
		busy = append(busy, GanttSegment{Subject: p.ID, Start: p.StartTime, End: currentTime})
	}
	return newResult(AlgorithmFCFS, procs, busy, currentTime)
}
