package cartrun

import "time"

// TickClock is a logical clock that advances one fixed step per processed
// tick, so jump timing never depends on wall time.
type TickClock struct {
	now  time.Duration
	step time.Duration
}

// NewTickClock returns a clock stepping 1/tickRate seconds per tick.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{step: time.Second / time.Duration(tickRate)}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.now += c.step
}

// Now returns the elapsed logical time.
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Reset rewinds the clock to zero.
func (c *TickClock) Reset() {
	c.now = 0
}
