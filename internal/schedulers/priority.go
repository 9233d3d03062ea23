package schedulers

import (
	"cpu-scheduler/internal/core"
)

// SchedulePriority is non-preemptive priority scheduling. A lower priority
// value wins; a dispatched process is never preempted by a later arrival.
func SchedulePriority(workloads []core.Workload) (Schedule, error) {
	return scheduleNonPreemptive(Priority, workloads, func(p *core.Proccess) int {
		return p.Priority
	})
}
