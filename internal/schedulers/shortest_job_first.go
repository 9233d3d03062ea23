package schedulers

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: among the arrived processes the
// one with the smallest burst runs to completion next.
func ScheduleShortestJobFirst(workloads []core.Workload) (Schedule, error) {
	return scheduleNonPreemptive(ShortestJobFirst, workloads, func(p *core.Proccess) int {
		return p.BurstTime
	})
}

// scheduleNonPreemptive drives SJF and Priority. key picks the ready process
// (smallest first); ties go to the earlier arrival, then to input order.
func scheduleNonPreemptive(algorithm Algorithm, workloads []core.Workload, key func(p *core.Proccess) int) (Schedule, error) {
	if err := core.Validate(workloads); err != nil {
		return Schedule{}, err
	}

	s := newSimulation(workloads, func(a, b *core.Proccess) bool {
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return key(a) < key(b)
	})
	readyQueue := priorityqueue.NewWith(readyComparator(key))

	for !s.pending.Empty() || !readyQueue.Empty() {
		s.admit(func(p *core.Proccess) { readyQueue.Enqueue(p) })

		v, ok := readyQueue.Dequeue()
		if !ok {
			s.idle()
			continue
		}
		proccess := v.(*core.Proccess)
		s.cpu.Execute(proccess, 0)
		s.finish(proccess)
	}
	return s.schedule(algorithm), nil
}

func readyComparator(key func(p *core.Proccess) int) utils.Comparator {
	return func(a, b interface{}) int {
		pa, pb := a.(*core.Proccess), b.(*core.Proccess)
		if c := utils.IntComparator(key(pa), key(pb)); c != 0 {
			return c
		}
		if c := utils.IntComparator(pa.ArrivalTime, pb.ArrivalTime); c != 0 {
			return c
		}
		return utils.IntComparator(pa.Order, pb.Order)
	}
}
