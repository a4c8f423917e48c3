package handler

import "sync/atomic"

// Stats tracks dispatch statistics for a sink. A failed write is
// observable here even though the emitting caller never sees an error,
// so dropped-on-failure lines are distinguishable from lines that were
// filtered out before reaching the sink.
type Stats struct {
	// ProcessedTotal counts records written to the sink
	ProcessedTotal uint64
	// FailedTotal counts records lost to I/O failures
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of a sink's statistics
type Snapshot struct {
	Processed uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: s.GetProcessed(),
		Failed:    s.GetFailed(),
	}
}
