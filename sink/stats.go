package sink

import "sync/atomic"

// Stats tracks per-sink write outcomes
type Stats struct {
	// WrittenTotal counts lines written and flushed without error
	WrittenTotal uint64
	// FailedTotal counts lines whose write or flush failed
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	atomic.AddUint64(&s.WrittenTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetWritten returns the written count
func (s *Stats) GetWritten() uint64 {
	return atomic.LoadUint64(&s.WrittenTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	WrittenTotal uint64
	FailedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WrittenTotal: s.GetWritten(),
		FailedTotal:  s.GetFailed(),
	}
}
