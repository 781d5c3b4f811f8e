// Package report renders a simulation result as plain text: a Gantt strip
// followed by a per-process schedule table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
)

// Write renders one result to w.
func Write(w io.Writer, result sim.Result) {
	writeTitle(w, result.Algorithm)
	writeGantt(w, result.Gantt)
	writeSchedule(w, result)
}

// WriteComparison renders all results of a comparison run plus the winner.
func WriteComparison(w io.Writer, rep sim.ComparisonReport) {
	for _, result := range rep.Results {
		Write(w, result)
	}
	_, _ = fmt.Fprintf(w, "Best by average waiting time: %s (%.2f)\n",
		rep.Comparison.BestAlgorithm, rep.Comparison.AverageWaitingTime)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []sim.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range gantt {
		pad := (8 - len(seg.Subject)) / 2
		if pad < 0 {
			pad = 0
		}
		padding := strings.Repeat(" ", pad)
		_, _ = fmt.Fprint(w, padding, seg.Subject, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range gantt {
		_, _ = fmt.Fprint(w, seg.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, seg.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func writeSchedule(w io.Writer, result sim.Result) {
	rows := make([][]string, len(result.Processes))
	for i, p := range result.Processes {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
