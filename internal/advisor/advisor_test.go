package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func batch(bursts []int, priorities []int) []core.Workload {
	out := make([]core.Workload, 0, len(bursts))
	for i, b := range bursts {
		out = append(out, core.Workload{ProcessId: i + 1, ArrivalTime: i, BurstTime: b, Priority: priorities[i]})
	}
	return out
}

func algorithms(s Suggestion) []schedulers.Algorithm {
	out := make([]schedulers.Algorithm, 0, len(s.Recommendations))
	for _, r := range s.Recommendations {
		out = append(out, r.Algorithm)
	}
	return out
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		workloads  []core.Workload
		algorithms []schedulers.Algorithm
	}{
		{
			name:       "all short",
			workloads:  batch([]int{1, 2, 3}, []int{1, 1, 1}),
			algorithms: []schedulers.Algorithm{schedulers.ShortestJobFirst},
		},
		{
			name:       "high priority value",
			workloads:  batch([]int{5, 6}, []int{1, 9}),
			algorithms: []schedulers.Algorithm{schedulers.Priority},
		},
		{
			name:       "short and long mixed",
			workloads:  batch([]int{10, 2, 5, 6}, []int{1, 1, 1, 1}),
			algorithms: []schedulers.Algorithm{schedulers.MultilevelFeedbackQueue},
		},
		{
			name:      "every heuristic",
			workloads: batch([]int{10, 2}, []int{7, 1}),
			algorithms: []schedulers.Algorithm{
				schedulers.ShortestJobFirst,
				schedulers.Priority,
				schedulers.MultilevelFeedbackQueue,
			},
		},
		{
			name:      "uniform",
			workloads: batch([]int{5, 5, 5}, []int{2, 2, 2}),
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Suggest(tt.workloads)
			assert.Equal(t, len(tt.algorithms), len(s.Recommendations))
			if len(tt.algorithms) > 0 {
				assert.Equal(t, tt.algorithms, algorithms(s))
			}
		})
	}
}

func TestSuggestion_Message(t *testing.T) {
	assert.Equal(t, NoSuggestion, Suggest(batch([]int{5, 5}, []int{1, 1})).Message())

	msg := Suggest(batch([]int{1, 1}, []int{9, 9})).Message()
	assert.Contains(t, msg, "Recommended: Shortest Job First")
	assert.Contains(t, msg, "Recommended: Priority")
	assert.NotContains(t, msg, "Multilevel")
}
