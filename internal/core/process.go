package core

// Workload is the caller supplied description of one unit of CPU work.
type Workload struct {
	ProcessId   int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value = higher priority
}

// Proccess is the working copy of a Workload owned by a single simulation run.
// startTime and finishTime are set once and never cleared.
type Proccess struct {
	Workload
	Order         int // position in the input batch, used as the last tie-break
	RemainingTime int

	started    bool
	startTime  int
	dispatches int
}

// NewProccess builds a fresh working copy of w.
func NewProccess(w Workload, order int) *Proccess {
	return &Proccess{
		Workload:      w,
		Order:         order,
		RemainingTime: w.BurstTime,
	}
}

// Started reports whether the process was given the CPU at least once.
func (p *Proccess) Started() bool { return p.started }

// StartTime returns the first dispatch tick and whether it is set.
func (p *Proccess) StartTime() (int, bool) { return p.startTime, p.started }

// Dispatch records a CPU grant at clock. Only the first call sets the start time.
func (p *Proccess) Dispatch(clock int) {
	if !p.started {
		p.started = true
		p.startTime = clock
	}
	p.dispatches++
}

// Execute consumes up to ticks of remaining time and returns how many were used.
func (p *Proccess) Execute(ticks int) int {
	if ticks > p.RemainingTime {
		ticks = p.RemainingTime
	}
	p.RemainingTime -= ticks
	return ticks
}

// Done reports whether the process has no remaining work.
func (p *Proccess) Done() bool { return p.RemainingTime == 0 }

// Complete turns a finished process into its immutable record.
func (p *Proccess) Complete(finishTime int) Completed {
	turnAroundTime := finishTime - p.ArrivalTime
	return Completed{
		Workload:       p.Workload,
		StartTime:      p.startTime,
		FinishTime:     finishTime,
		WaitingTime:    turnAroundTime - p.BurstTime,
		TurnAroundTime: turnAroundTime,
		ResponseTime:   p.startTime - p.ArrivalTime,
		Dispatches:     p.dispatches,
	}
}

// Completed is a finished workload with every timing field populated.
type Completed struct {
	Workload
	StartTime      int
	FinishTime     int
	WaitingTime    int
	TurnAroundTime int
	ResponseTime   int
	Dispatches     int
}
