package service

import "sync/atomic"

// VisitCounter tracks page visits for the lifetime of the process. It is
// deliberately not persisted; a restart resets it.
type VisitCounter struct {
	visits atomic.Int64
}

// NewVisitCounter creates a new visit counter
func NewVisitCounter() *VisitCounter {
	return &VisitCounter{}
}

// Record increments the counter and returns the new value.
func (c *VisitCounter) Record() int64 {
	return c.visits.Add(1)
}

// Count returns the visits seen so far.
func (c *VisitCounter) Count() int64 {
	return c.visits.Load()
}
