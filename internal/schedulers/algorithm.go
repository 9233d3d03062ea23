package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidQuantum   = errors.New("invalid parameter: time quantum must be positive")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm names one of the supported scheduling disciplines.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	Priority
	RoundRobin
	MultilevelFeedbackQueue
)

// DefaultLevelsTimeQuantum are the quantums of the first two MLFQ levels.
var DefaultLevelsTimeQuantum = []int{4, 8}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "rr"
	case MultilevelFeedbackQueue:
		return "mlfq"
	default:
		return "unknown"
	}
}

// Title is the human readable name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-Come-First-Served"
	case ShortestJobFirst:
		return "Shortest Job First"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round Robin"
	case MultilevelFeedbackQueue:
		return "Multilevel Feedback Queue"
	default:
		return "Unknown"
	}
}

// Algorithms lists every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin, MultilevelFeedbackQueue}
}

// ParseAlgorithm maps an external label onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve", "first-come-first-served":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first":
		return ShortestJobFirst, nil
	case "priority":
		return Priority, nil
	case "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	case "mlfq", "multilevel-feedback-queue":
		return MultilevelFeedbackQueue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options carries the per-run parameters. TimeQuantum is only read by
// RoundRobin and LevelsTimeQuantum only by MultilevelFeedbackQueue.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// Schedule is the outcome of one simulation run.
type Schedule struct {
	Algorithm Algorithm
	Processes []core.Completed // completion order
	Timeline  []core.Slice
	CpuMetric core.CpuMetric
}

type scheduleFunc func(workloads []core.Workload, opts Options) (Schedule, error)

var dispatch = map[Algorithm]scheduleFunc{
	FirstComeFirstServe: func(w []core.Workload, _ Options) (Schedule, error) {
		return ScheduleFirstComeFirstServe(w)
	},
	ShortestJobFirst: func(w []core.Workload, _ Options) (Schedule, error) {
		return ScheduleShortestJobFirst(w)
	},
	Priority: func(w []core.Workload, _ Options) (Schedule, error) {
		return SchedulePriority(w)
	},
	RoundRobin: func(w []core.Workload, opts Options) (Schedule, error) {
		return ScheduleRoundRobin(w, opts.TimeQuantum)
	},
	MultilevelFeedbackQueue: func(w []core.Workload, opts Options) (Schedule, error) {
		levels := opts.LevelsTimeQuantum
		if len(levels) == 0 {
			levels = DefaultLevelsTimeQuantum
		}
		return ScheduleMultilevelFeedbackQueue(w, levels)
	},
}

// Run simulates workloads under the given algorithm.
func Run(algorithm Algorithm, workloads []core.Workload, opts Options) (Schedule, error) {
	fn, ok := dispatch[algorithm]
	if !ok {
		return Schedule{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algorithm))
	}
	return fn(workloads, opts)
}
