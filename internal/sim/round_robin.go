package sim

import "sort"

// runRoundRobin dispatches the FIFO ready queue head for at most timeQuantum
// units at a time. Processes arriving during a slice enter the queue before
// the preempted process re-enqueues, so nobody is overtaken by the process
// that just ran.
func runRoundRobin(processes []Process, timeQuantum int) Result {
	procs := cloneProcesses(processes)

	arrivalOrder := make([]int, len(procs))
	for i := range arrivalOrder {
		arrivalOrder[i] = i
	}
	sort.SliceStable(arrivalOrder, func(i, j int) bool {
		return procs[arrivalOrder[i]].ArrivalTime < procs[arrivalOrder[j]].ArrivalTime
	})

	busy := make([]GanttSegment, 0, len(procs))
	queue := make([]int, 0, len(procs))
	cursor := 0
	currentTime := 0

	// The cursor only moves forward, so a process can never be enqueued twice.
	enqueueArrivals := func(upTo int) {
		for cursor < len(arrivalOrder) && procs[arrivalOrder[cursor]].ArrivalTime <= upTo {
			queue = append(queue, arrivalOrder[cursor])
			cursor++
		}
	}

	if len(procs) > 0 {
		if first := procs[arrivalOrder[0]].ArrivalTime; first > currentTime {
			currentTime = first
		}
		enqueueArrivals(currentTime)
	}

	for completed := 0; completed < len(procs); {
		if len(queue) == 0 {
			currentTime = procs[arrivalOrder[cursor]].ArrivalTime
			enqueueArrivals(currentTime)
		}

		idx := queue[0]
		queue = queue[1:]
		p := &procs[idx]
		if p.StartTime == NotStarted {
			p.StartTime = currentTime
		}

		run := timeQuantum
		if p.RemainingTime < run {
			run = p.RemainingTime
		}
		busy = append(busy, GanttSegment{Subject: p.ID, Start: currentTime, End: currentTime + run})
		p.RemainingTime -= run
		currentTime += run

		enqueueArrivals(currentTime)

		if p.RemainingTime > 0 {
			queue = append(queue, idx)
		} else {
			p.finish(currentTime)
			completed++
		}
	}
	return newResult(AlgorithmRoundRobin, procs, busy, currentTime)
}
