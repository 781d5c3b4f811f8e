package sim

// NotStarted is the StartTime sentinel for a process that has never been
// dispatched.
const NotStarted = -1

// Process is one synthetic process in a scheduling batch. ArrivalTime,
// BurstTime and Priority are inputs; the remaining fields are filled in by a
// simulation run. Lower Priority value means higher priority.
type Process struct {
	ID             string `json:"id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	RemainingTime  int    `json:"remaining_time"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	WaitingTime    int    `json:"waiting_time"`
}

// Completed reports whether the process finished during a simulation run.
func (p *Process) Completed() bool {
	return p.CompletionTime > 0
}

// finish stamps the completion bookkeeping once a process has run its full
// burst. turnaround = completion - arrival, waiting = turnaround - burst.
func (p *Process) finish(completionTime int) {
	p.CompletionTime = completionTime
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// cloneProcesses gives a simulation run its own value copy of the input batch
// so no run ever aliases the caller's slice or another run's working set.
func cloneProcesses(processes []Process) []Process {
	procs := make([]Process, len(processes))
	copy(procs, processes)
	for i := range procs {
		procs[i].RemainingTime = procs[i].BurstTime
		procs[i].StartTime = NotStarted
		procs[i].CompletionTime = 0
		procs[i].TurnaroundTime = 0
		procs[i].WaitingTime = 0
	}
	return procs
}
