package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs every workload to completion in arrival order.
func ScheduleFirstComeFirstServe(workloads []core.Workload) (Schedule, error) {
	if err := core.Validate(workloads); err != nil {
		return Schedule{}, err
	}

	s := newSimulation(workloads, byArrival)
	for {
		v, ok := s.pending.Dequeue()
		if !ok {
			break
		}
		proccess := v.(*core.Proccess)
		// cpu is idle until the process arrives
		s.cpu.IdleUntil(proccess.ArrivalTime)
		s.cpu.Execute(proccess, 0)
		s.finish(proccess)
	}
	return s.schedule(FirstComeFirstServe), nil
}
