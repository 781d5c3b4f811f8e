package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
)

func TestWriteRendersGanttAndTable(t *testing.T) {
	result, err := sim.Schedule("fcfs", []sim.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 8},
		{ID: "P2", ArrivalTime: 1, BurstTime: 4},
	}, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "FCFS")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "0.17") // throughput: 2 processes / 12 units
}

func TestWriteComparisonNamesWinner(t *testing.T) {
	rep := sim.RunAll([]sim.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 1},
		{ID: "P2", ArrivalTime: 0, BurstTime: 1, Priority: 2},
	}, 2)

	var buf bytes.Buffer
	WriteComparison(&buf, rep)
	assert.Contains(t, buf.String(), "Best by average waiting time: "+rep.Comparison.BestAlgorithm)
}
