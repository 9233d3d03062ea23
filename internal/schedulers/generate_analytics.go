package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

// ErrMetricsUndefined is returned when the completed batch spans zero ticks.
var ErrMetricsUndefined = errors.New("metrics undefined: total time span is zero")

// Analytics summarizes a completed batch.
type Analytics struct {
	ProcessCount          int
	TotalTime             int // last finish - first arrival
	BusyTime              int
	IdleTime              int
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64
	CpuUtilization        float64 // percent
	CpuThroughput         float64 // processes per tick
	CompletionOrder       []int
}

// CompletionOrderString renders the order as "P2, P1".
func (a Analytics) CompletionOrderString() string {
	names := make([]string, 0, len(a.CompletionOrder))
	for _, pid := range a.CompletionOrder {
		names = append(names, fmt.Sprintf("P%d", pid))
	}
	return strings.Join(names, ", ")
}

// GenerateAnalytics derives averages, utilization and throughput from
// processes given in completion order. An empty batch yields zero Analytics.
func GenerateAnalytics(processes []core.Completed) (Analytics, error) {
	if len(processes) == 0 {
		return Analytics{CompletionOrder: []int{}}, nil
	}

	var busyTime, waitingSum, responseSum, turnAroundSum int
	firstArrival := processes[0].ArrivalTime
	order := make([]int, 0, len(processes))
	for _, p := range processes {
		busyTime += p.BurstTime
		waitingSum += p.WaitingTime
		responseSum += p.ResponseTime
		turnAroundSum += p.TurnAroundTime
		if p.ArrivalTime < firstArrival {
			firstArrival = p.ArrivalTime
		}
		order = append(order, p.ProcessId)
	}

	totalTime := processes[len(processes)-1].FinishTime - firstArrival
	if totalTime <= 0 {
		return Analytics{}, fmt.Errorf("%w: %d processes", ErrMetricsUndefined, len(processes))
	}

	count := len(processes)
	return Analytics{
		ProcessCount:          count,
		TotalTime:             totalTime,
		BusyTime:              busyTime,
		IdleTime:              totalTime - busyTime,
		AverageWaitingTime:    float64(waitingSum) / float64(count),
		AverageResponseTime:   float64(responseSum) / float64(count),
		AverageTurnAroundTime: float64(turnAroundSum) / float64(count),
		CpuUtilization:        float64(busyTime) / float64(totalTime) * 100,
		CpuThroughput:         float64(count) / float64(totalTime),
		CompletionOrder:       order,
	}, nil
}
