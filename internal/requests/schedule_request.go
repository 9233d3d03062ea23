package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Workloads converts the request jobs into engine input, keeping their order.
func (r ScheduleRequests) Workloads() []core.Workload {
	workloads := make([]core.Workload, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		workloads = append(workloads, core.Workload{
			ProcessId:   job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return workloads
}
