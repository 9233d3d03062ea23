package schedulers

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin grants each ready process at most timeQuantum ticks in FIFO order.
func ScheduleRoundRobin(workloads []core.Workload, timeQuantum int) (Schedule, error) {
	if timeQuantum <= 0 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	if err := core.Validate(workloads); err != nil {
		return Schedule{}, err
	}

	s := newSimulation(workloads, byArrival)
	roundRobinQueue := linkedlistqueue.New()
	enqueue := func(p *core.Proccess) { roundRobinQueue.Enqueue(p) }

	for !s.pending.Empty() || !roundRobinQueue.Empty() {
		s.admit(enqueue)

		v, ok := roundRobinQueue.Dequeue()
		if !ok {
			s.idle()
			continue
		}
		proccess := v.(*core.Proccess)
		s.cpu.Execute(proccess, timeQuantum)

		// arrivals during the slice queue up ahead of the preempted process
		s.admit(enqueue)

		if proccess.Done() {
			s.finish(proccess)
		} else {
			roundRobinQueue.Enqueue(proccess)
		}
	}
	return s.schedule(RoundRobin), nil
}
