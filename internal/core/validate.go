package core

import (
	"errors"
	"fmt"
)

// ErrMalformedWorkload is returned when a batch breaks the input contract.
var ErrMalformedWorkload = errors.New("malformed workload")

// Validate checks ids, arrival and burst times of a batch before simulation.
func Validate(workloads []Workload) error {
	seen := make(map[int]struct{}, len(workloads))
	for i, w := range workloads {
		switch {
		case w.ProcessId <= 0:
			return fmt.Errorf("%w: row %d: process id must be positive, got %d", ErrMalformedWorkload, i, w.ProcessId)
		case w.ArrivalTime < 0:
			return fmt.Errorf("%w: pid %d: arrival time must not be negative, got %d", ErrMalformedWorkload, w.ProcessId, w.ArrivalTime)
		case w.BurstTime <= 0:
			return fmt.Errorf("%w: pid %d: burst time must be positive, got %d", ErrMalformedWorkload, w.ProcessId, w.BurstTime)
		}
		if _, dup := seen[w.ProcessId]; dup {
			return fmt.Errorf("%w: pid %d appears more than once", ErrMalformedWorkload, w.ProcessId)
		}
		seen[w.ProcessId] = struct{}{}
	}
	return nil
}
