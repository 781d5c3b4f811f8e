package sim

// runPriority is non-preemptive priority scheduling: lowest priority value
// wins, ties go to the earliest arrival, then input order. A late arrival with
// a better priority never interrupts the running process.
func runPriority(processes []Process) Result {
	return runNonPreemptive(AlgorithmPriority, processes, func(a, b *Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}
