package http

import (
	"sync/atomic"
	"time"
)

// LogicalClock hands out strictly increasing timestamps for incoming
// operations. The domain orders events by these values, never by wall-clock
// reads of its own: the adapter is the single place time enters the system.
//
// The counter is seeded from wall time at construction so values keep growing
// across restarts, then advances by one per tick regardless of the wall clock.
type LogicalClock struct {
	now atomic.Int64
}

// NewLogicalClock creates a clock seeded from the current wall time.
func NewLogicalClock() *LogicalClock {
	c := &LogicalClock{}
	c.now.Store(time.Now().UnixMilli())
	return c
}

// Tick returns the next timestamp. Safe for concurrent use.
func (c *LogicalClock) Tick() int64 {
	return c.now.Add(1)
}
