package schedulers

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"cpu-scheduler/internal/core"
)

// simulation holds the state of a single run: the virtual cpu, the pool of
// processes that have not arrived yet and the completed sequence.
type simulation struct {
	cpu       *core.Cpu
	pending   *linkedlistqueue.Queue
	completed []core.Completed
}

// newSimulation copies workloads into fresh processes and queues them in
// pending order. less must order by arrival time first; ties keep input order.
func newSimulation(workloads []core.Workload, less func(a, b *core.Proccess) bool) *simulation {
	proccesses := make([]*core.Proccess, 0, len(workloads))
	for i, w := range workloads {
		proccesses = append(proccesses, core.NewProccess(w, i))
	}
	sort.SliceStable(proccesses, func(i, j int) bool {
		return less(proccesses[i], proccesses[j])
	})

	pending := linkedlistqueue.New()
	for _, p := range proccesses {
		pending.Enqueue(p)
	}
	return &simulation{
		cpu:       core.NewCpu(),
		pending:   pending,
		completed: make([]core.Completed, 0, len(workloads)),
	}
}

func byArrival(a, b *core.Proccess) bool {
	return a.ArrivalTime < b.ArrivalTime
}

// admit hands every pending process that has arrived by now to ready.
func (s *simulation) admit(ready func(p *core.Proccess)) {
	for {
		v, ok := s.pending.Peek()
		if !ok || v.(*core.Proccess).ArrivalTime > s.cpu.Clock() {
			return
		}
		s.pending.Dequeue()
		ready(v.(*core.Proccess))
	}
}

// idle jumps the clock to the next pending arrival. It returns false when
// nothing is left to arrive.
func (s *simulation) idle() bool {
	v, ok := s.pending.Peek()
	if !ok {
		return false
	}
	s.cpu.IdleUntil(v.(*core.Proccess).ArrivalTime)
	return true
}

func (s *simulation) finish(p *core.Proccess) {
	s.completed = append(s.completed, p.Complete(s.cpu.Clock()))
}

func (s *simulation) schedule(algorithm Algorithm) Schedule {
	return Schedule{
		Algorithm: algorithm,
		Processes: s.completed,
		Timeline:  s.cpu.Timeline(),
		CpuMetric: s.cpu.Metric(),
	}
}
