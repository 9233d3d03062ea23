// Package advisor inspects a batch before simulation and recommends
// scheduling disciplines that suit it.
package advisor

import (
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const (
	shortBurst   = 3 // burst <= shortBurst is a short task
	longBurst    = 8 // burst >= longBurst is a long task
	highPriority = 5 // priority > highPriority hints at long waits
)

const NoSuggestion = "No specific suggestion. Default algorithms can be used."

// Recommendation is one triggered heuristic.
type Recommendation struct {
	Algorithm schedulers.Algorithm
	Reason    string
}

// Suggestion is the combined advice for a batch.
type Suggestion struct {
	Recommendations []Recommendation
}

// Message renders the suggestion as text, one line per recommendation.
func (s Suggestion) Message() string {
	if len(s.Recommendations) == 0 {
		return NoSuggestion
	}
	var b strings.Builder
	b.WriteString("Suggestion:\n")
	for _, r := range s.Recommendations {
		b.WriteString("- ")
		b.WriteString(r.Reason)
		b.WriteString(". Recommended: ")
		b.WriteString(r.Algorithm.Title())
		b.WriteString("\n")
	}
	return b.String()
}

// Suggest applies the heuristics to workloads. An empty batch gets no recommendation.
func Suggest(workloads []core.Workload) Suggestion {
	var s Suggestion
	if len(workloads) == 0 {
		return s
	}

	var short, long int
	var urgent bool
	for _, w := range workloads {
		if w.BurstTime <= shortBurst {
			short++
		}
		if w.BurstTime >= longBurst {
			long++
		}
		if w.Priority > highPriority {
			urgent = true
		}
	}

	// at least half of the batch, compared without integer division
	if short*2 >= len(workloads) {
		s.Recommendations = append(s.Recommendations, Recommendation{
			Algorithm: schedulers.ShortestJobFirst,
			Reason:    "Many short tasks detected",
		})
	}
	if urgent {
		s.Recommendations = append(s.Recommendations, Recommendation{
			Algorithm: schedulers.Priority,
			Reason:    "Interactive tasks with long wait times detected",
		})
	}
	if long > 0 && short > 0 {
		s.Recommendations = append(s.Recommendations, Recommendation{
			Algorithm: schedulers.MultilevelFeedbackQueue,
			Reason:    "Mixture of I/O-bound and CPU-bound tasks detected",
		})
	}
	return s
}
