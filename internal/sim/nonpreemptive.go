package sim

// runNonPreemptive is the shared control loop behind SJF and Priority: at each
// step pick, among arrived unfinished processes, the one the comparison ranks
// first, and run it to completion. A strictly-less comparison scanned in input
// order makes input position the final tie-break.
func runNonPreemptive(algorithm string, processes []Process, less func(a, b *Process) bool) Result {
	procs := cloneProcesses(processes)
	busy := make([]GanttSegment, 0, len(procs))
	currentTime := 0

	for completed := 0; completed < len(procs); {
		selected := -1
		for i := range procs {
			p := &procs[i]
			if p.Completed() || p.ArrivalTime > currentTime {
				continue
			}
			if selected == -1 || less(p, &procs[selected]) {
				selected = i
			}
		}

		if selected == -1 {
			// CPU idle: jump to the earliest arrival among unfinished
			// processes. The gap becomes an idle segment in newResult.
			next := -1
			for i := range procs {
				if procs[i].Completed() {
					continue
				}
				if next == -1 || procs[i].ArrivalTime < procs[next].ArrivalTime {
					next = i
				}
			}
			currentTime = procs[next].ArrivalTime
			continue
		}

		p := &procs[selected]
		p.StartTime = currentTime
		currentTime += p.BurstTime
		p.RemainingTime = 0
		p.finish(currentTime)
		busy = append(busy, GanttSegment{Subject: p.ID, Start: p.StartTime, End: currentTime})
		completed++
	}
	return newResult(algorithm, procs, busy, currentTime)
}
