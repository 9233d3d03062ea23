package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestGenerateAnalytics_ScenarioE(t *testing.T) {
	// total burst 4 over a span of 12 ticks
	schedule, err := ScheduleFirstComeFirstServe([]core.Workload{w(1, 0, 2, 0), w(2, 10, 2, 0)})
	require.NoError(t, err)

	analytics, err := GenerateAnalytics(schedule.Processes)
	require.NoError(t, err)

	assert.Equal(t, 12, analytics.TotalTime)
	assert.Equal(t, 4, analytics.BusyTime)
	assert.Equal(t, 8, analytics.IdleTime)
	assert.InDelta(t, 33.33, analytics.CpuUtilization, 0.01)
	assert.InDelta(t, 2.0/12.0, analytics.CpuThroughput, 1e-9)
}

func TestGenerateAnalytics_Averages(t *testing.T) {
	schedule, err := ScheduleFirstComeFirstServe([]core.Workload{w(1, 0, 5, 0), w(2, 1, 3, 0), w(3, 2, 8, 0)})
	require.NoError(t, err)

	analytics, err := GenerateAnalytics(schedule.Processes)
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.ProcessCount)
	assert.InDelta(t, 10.0/3.0, analytics.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 10.0/3.0, analytics.AverageResponseTime, 1e-9)
	assert.InDelta(t, 26.0/3.0, analytics.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 100.0, analytics.CpuUtilization, 1e-9)
	assert.Equal(t, []int{1, 2, 3}, analytics.CompletionOrder)
	assert.Equal(t, "P1, P2, P3", analytics.CompletionOrderString())
}

func TestGenerateAnalytics_CompletionOrderFollowsInput(t *testing.T) {
	schedule, err := ScheduleRoundRobin([]core.Workload{w(1, 0, 5, 0), w(2, 1, 3, 0)}, 2)
	require.NoError(t, err)

	analytics, err := GenerateAnalytics(schedule.Processes)
	require.NoError(t, err)
	assert.Equal(t, "P2, P1", analytics.CompletionOrderString())
	assert.Equal(t, 8, analytics.TotalTime)
}

func TestGenerateAnalytics_Empty(t *testing.T) {
	analytics, err := GenerateAnalytics(nil)
	require.NoError(t, err)
	assert.Zero(t, analytics.ProcessCount)
	assert.Empty(t, analytics.CompletionOrderString())
}

func TestGenerateAnalytics_ZeroSpan(t *testing.T) {
	degenerate := []core.Completed{{
		Workload:   core.Workload{ProcessId: 1, ArrivalTime: 5},
		StartTime:  5,
		FinishTime: 5,
	}}
	_, err := GenerateAnalytics(degenerate)
	assert.ErrorIs(t, err, ErrMetricsUndefined)
}
