package core

import "time"

// processStart is captured when the package is initialized and serves
// as the device start for SystemClock.
var processStart = time.Now()

// Clock is the time source used to stamp log lines. Millis must be
// monotonically non-decreasing.
type Clock interface {
	Millis() uint64
}

// ClockFunc adapts an ordinary function to the Clock interface
type ClockFunc func() uint64

// Millis calls f()
func (f ClockFunc) Millis() uint64 {
	return f()
}

// UptimeClock reports the milliseconds elapsed since a fixed start.
// It relies on the monotonic reading carried by time.Time, so wall clock
// adjustments never make it go backwards.
type UptimeClock struct {
	start time.Time
}

// NewUptimeClock creates a clock counting from start
func NewUptimeClock(start time.Time) *UptimeClock {
	return &UptimeClock{start: start}
}

// Millis returns the elapsed milliseconds since start
func (c *UptimeClock) Millis() uint64 {
	d := time.Since(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

// SystemClock returns a clock counting from process start
func SystemClock() *UptimeClock {
	return NewUptimeClock(processStart)
}
