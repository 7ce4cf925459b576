package tui

// DefaultHoldGrace is the number of ticks a single key press counts as held.
const DefaultHoldGrace = 3

// HoldTracker turns key press events into a held/released signal.
//
// Terminals report presses (and auto-repeats) but never releases, so a key
// counts as held for grace ticks after its latest press event. Auto-repeat
// keeps renewing the window while the key is down.
type HoldTracker struct {
	grace     int
	remaining int
}

// NewHoldTracker creates a tracker. grace <= 0 uses DefaultHoldGrace.
func NewHoldTracker(grace int) HoldTracker {
	if grace <= 0 {
		grace = DefaultHoldGrace
	}
	return HoldTracker{grace: grace}
}

// Press registers a press or auto-repeat event.
func (h *HoldTracker) Press() {
	h.remaining = h.grace
}

// Held reports whether the key counts as held for the coming tick.
func (h HoldTracker) Held() bool {
	return h.remaining > 0
}

// Advance consumes one tick of the hold window.
func (h *HoldTracker) Advance() {
	if h.remaining > 0 {
		h.remaining--
	}
}

// Release drops the hold immediately.
func (h *HoldTracker) Release() {
	h.remaining = 0
}
