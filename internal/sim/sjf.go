package sim

// runSJF picks the arrived process with the smallest burst time, runs it to
// completion (no preemption by shorter late arrivals), and repeats. Ties on
// burst go to the earliest arrival, then input order.
func runSJF(processes []Process) Result {
	return runNonPreemptive(AlgorithmSJF, processes, func(a, b *Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}
