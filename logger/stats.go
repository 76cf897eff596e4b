package logger

import (
	"go.uber.org/atomic"

	"github.com/philipp01105/taglog/core"
)

// Stats tracks logger diagnostics. Counters are atomic so that a metrics
// collector may read them while the owning goroutine logs.
type Stats struct {
	// Emitted lines per level, indexed by core.Level
	emitted [core.DebugLevel + 1]atomic.Uint64
	// suppressed counts calls filtered by the threshold or an invalid level
	suppressed atomic.Uint64
	// rejected counts nil sinks passed to AddOutput
	rejected atomic.Uint64
	// skipped counts nil sinks met during fan-out
	skipped atomic.Uint64
	// writeErrors counts sink writes that returned an error
	writeErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted increments the emitted counter for a level
func (s *Stats) IncrementEmitted(level core.Level) {
	if !level.Valid() {
		return
	}
	s.emitted[level].Inc()
}

// IncrementSuppressed increments the suppressed counter
func (s *Stats) IncrementSuppressed() {
	s.suppressed.Inc()
}

// IncrementRejected increments the rejected sink counter
func (s *Stats) IncrementRejected() {
	s.rejected.Inc()
}

// IncrementSkipped increments the skipped sink counter
func (s *Stats) IncrementSkipped() {
	s.skipped.Inc()
}

// IncrementWriteErrors increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	s.writeErrors.Inc()
}

// GetEmitted returns the emitted count for a level
func (s *Stats) GetEmitted(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.emitted[level].Load()
}

// GetTotalEmitted returns the emitted count across all levels
func (s *Stats) GetTotalEmitted() uint64 {
	var total uint64
	for i := range s.emitted {
		total += s.emitted[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.emitted {
		s.emitted[i].Store(0)
	}
	s.suppressed.Store(0)
	s.rejected.Store(0)
	s.skipped.Store(0)
	s.writeErrors.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted         map[core.Level]uint64
	EmittedTotal    uint64
	Suppressed      uint64
	RejectedOutputs uint64
	SkippedOutputs  uint64
	WriteErrors     uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	emitted := make(map[core.Level]uint64, len(s.emitted))
	for l := core.NoneLevel; l <= core.DebugLevel; l++ {
		emitted[l] = s.GetEmitted(l)
	}
	return Snapshot{
		Emitted:         emitted,
		EmittedTotal:    s.GetTotalEmitted(),
		Suppressed:      s.suppressed.Load(),
		RejectedOutputs: s.rejected.Load(),
		SkippedOutputs:  s.skipped.Load(),
		WriteErrors:     s.writeErrors.Load(),
	}
}
