package core

// Slice is one contiguous run of a process on the virtual clock.
type Slice struct {
	ProcessId int
	Start     int
	End       int
}

// CpuMetric counts ticks spent busy and idle on the virtual clock.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single virtual processor. Its clock only moves forward.
type Cpu struct {
	clock    int
	timeline []Slice
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]Slice, 0)}
}

// Clock returns the current virtual tick.
func (c *Cpu) Clock() int { return c.clock }

// IdleUntil jumps the clock forward to tick. Earlier ticks are ignored.
func (c *Cpu) IdleUntil(tick int) {
	if tick <= c.clock {
		return
	}
	c.metric.IdleTime += tick - c.clock
	c.metric.TotalTime += tick - c.clock
	c.clock = tick
}

// Execute dispatches proccess for at most quantum ticks. A quantum <= 0 runs it to completion.
func (c *Cpu) Execute(proccess *Proccess, quantum int) int {
	if quantum <= 0 {
		quantum = proccess.RemainingTime
	}
	proccess.Dispatch(c.clock)
	ran := proccess.Execute(quantum)

	c.timeline = append(c.timeline, Slice{
		ProcessId: proccess.ProcessId,
		Start:     c.clock,
		End:       c.clock + ran,
	})
	c.clock += ran
	c.metric.UtilizationTime += ran
	c.metric.TotalTime += ran
	return ran
}

// Timeline returns the slices executed so far in time order.
func (c *Cpu) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// Metric returns the busy/idle counters. TotalTime starts at tick 0.
func (c *Cpu) Metric() CpuMetric { return c.metric }
