package schedulers

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"cpu-scheduler/internal/core"
)

// ScheduleMultilevelFeedbackQueue runs len(timeQuantumList)+1 levels. Level i
// grants timeQuantumList[i] ticks and demotes unfinished processes one level
// down; the last level runs its head to completion. Processes never move up.
func ScheduleMultilevelFeedbackQueue(workloads []core.Workload, timeQuantumList []int) (Schedule, error) {
	for i, q := range timeQuantumList {
		if q <= 0 {
			return Schedule{}, fmt.Errorf("%w: level %d got %d", ErrInvalidQuantum, i+1, q)
		}
	}
	if err := core.Validate(workloads); err != nil {
		return Schedule{}, err
	}

	s := newSimulation(workloads, byArrival)
	levels := make([]*linkedlistqueue.Queue, len(timeQuantumList)+1)
	for i := range levels {
		levels[i] = linkedlistqueue.New()
	}
	last := len(levels) - 1
	enqueueTop := func(p *core.Proccess) { levels[0].Enqueue(p) }

	for {
		s.admit(enqueueTop)

		level, proccess := nextFromLevels(levels)
		if proccess == nil {
			if !s.idle() {
				break
			}
			continue
		}

		quantum := 0 // last level: run to completion
		if level < last {
			quantum = timeQuantumList[level]
		}
		s.cpu.Execute(proccess, quantum)
		s.admit(enqueueTop)

		if proccess.Done() {
			s.finish(proccess)
			continue
		}
		if level < last {
			level++
		}
		levels[level].Enqueue(proccess)
	}
	return s.schedule(MultilevelFeedbackQueue), nil
}

// nextFromLevels pops the head of the highest non-empty level.
func nextFromLevels(levels []*linkedlistqueue.Queue) (int, *core.Proccess) {
	for i, q := range levels {
		if v, ok := q.Dequeue(); ok {
			return i, v.(*core.Proccess)
		}
	}
	return -1, nil
}
