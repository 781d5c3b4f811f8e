package sim

import "math"

// Result is the full outcome of one simulation run: final process states, the
// gap-free timeline, and the derived statistics.
type Result struct {
	Algorithm             string         `json:"algorithm"`
	Processes             []Process      `json:"processes"`
	Gantt                 []GanttSegment `json:"gantt"`
	TotalTime             int            `json:"total_time"`
	AverageWaitingTime    float64        `json:"average_waiting_time"`
	AverageTurnaroundTime float64        `json:"average_turnaround_time"`
	Throughput            float64        `json:"throughput"`
}

// newResult assembles a Result from a finished run: merges quantum fragments,
// fills idle gaps, and computes averages over completed processes only.
func newResult(algorithm string, procs []Process, busy []GanttSegment, totalTime int) Result {
	gantt := fillIdleGaps(mergeAdjacentSegments(busy))

	var waitingSum, turnaroundSum float64
	completed := 0
	for i := range procs {
		if !procs[i].Completed() {
			continue
		}
		waitingSum += float64(procs[i].WaitingTime)
		turnaroundSum += float64(procs[i].TurnaroundTime)
		completed++
	}

	result := Result{
		Algorithm: algorithm,
		Processes: procs,
		Gantt:     gantt,
		TotalTime: totalTime,
	}
	if completed > 0 {
		result.AverageWaitingTime = round2(waitingSum / float64(completed))
		result.AverageTurnaroundTime = round2(turnaroundSum / float64(completed))
	}
	if totalTime > 0 {
		result.Throughput = round2(float64(completed) / float64(totalTime))
	}
	return result
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
