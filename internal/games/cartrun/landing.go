package cartrun

import "github.com/vovakirdan/cartrun/internal/core"

// ResolveLanding snaps a descending cart onto the first segment whose surface
// it reaches this tick. The reach test looks ahead lookahead*DY so a fast
// fall cannot tunnel through a surface between two ticks.
//
// OnTrack is recomputed from scratch: a cart resting on a segment that has
// scrolled away is airborne again.
func ResolveLanding(c *Cart, segments []Segment, segmentWidth, lookahead float64) bool {
	c.OnTrack = false
	if c.DY < 0 {
		return false
	}

	for _, s := range segments {
		if !core.SpansOverlap(c.X, c.X+c.Width, s.X, s.X+segmentWidth) {
			continue
		}
		if c.Y <= s.Y && c.Y+lookahead*c.DY >= s.Y {
			c.Y = s.Y
			c.DY = 0
			c.OnTrack = true
			c.ForceFall = false
			c.Jumping = false
			return true
		}
	}
	return false
}
