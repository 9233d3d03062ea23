package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func TestWrite(t *testing.T) {
	schedule, err := schedulers.ScheduleRoundRobin([]core.Workload{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
	}, 2)
	require.NoError(t, err)
	analytics, err := schedulers.GenerateAnalytics(schedule.Processes)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, schedule, analytics)
	out := buf.String()

	assert.Contains(t, out, "Round Robin")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "P2, P1")
	assert.Contains(t, out, "100.00 %")
}

func TestWriteComparison(t *testing.T) {
	batch := []core.Workload{{ProcessId: 1, BurstTime: 4}, {ProcessId: 2, ArrivalTime: 1, BurstTime: 1}}
	var results []schedulers.Schedule
	var analytics []schedulers.Analytics
	for _, algorithm := range schedulers.Algorithms() {
		schedule, err := schedulers.Run(algorithm, batch, schedulers.Options{TimeQuantum: 1})
		require.NoError(t, err)
		a, err := schedulers.GenerateAnalytics(schedule.Processes)
		require.NoError(t, err)
		results = append(results, schedule)
		analytics = append(analytics, a)
	}

	var buf bytes.Buffer
	WriteComparison(&buf, results, analytics)
	for _, algorithm := range schedulers.Algorithms() {
		assert.Contains(t, buf.String(), algorithm.Title())
	}
}
