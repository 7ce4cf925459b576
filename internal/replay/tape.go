// Package replay records the jump input of a run and plays it back.
//
// A run is fully determined by its seed, its runtime config and the ticks on
// which jump was held, so a recording only needs those three.
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/cartrun/internal/core"
)

// ErrBadTape is returned when a tape string cannot be parsed.
var ErrBadTape = errors.New("replay: malformed tape")

// Span is a half-open range of ticks [Start, End) with jump held.
type Span struct {
	Start, End int
}

// Tape is the jump input of one run. Ticks are numbered from 1, matching
// core.GameState.Tick after the step that consumed the input.
type Tape struct {
	spans []Span
	last  int // Highest tick recorded
}

// Record notes whether jump was held on tick. Ticks must be recorded in
// increasing order; out-of-order ticks are ignored.
func (t *Tape) Record(tick int, held bool) {
	if tick <= t.last {
		return
	}
	t.last = tick
	if !held {
		return
	}

	if n := len(t.spans); n > 0 && t.spans[n-1].End == tick {
		t.spans[n-1].End = tick + 1
		return
	}
	t.spans = append(t.spans, Span{Start: tick, End: tick + 1})
}

// Held reports whether jump was held on tick.
func (t *Tape) Held(tick int) bool {
	for _, s := range t.spans {
		if tick < s.Start {
			return false
		}
		if tick < s.End {
			return true
		}
	}
	return false
}

// Frame returns the input frame for tick.
func (t *Tape) Frame(tick int) core.InputFrame {
	return core.JumpFrame(t.Held(tick))
}

// Spans returns a copy of the held spans.
func (t *Tape) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// HeldTicks returns the total number of ticks with jump held.
func (t *Tape) HeldTicks() int {
	n := 0
	for _, s := range t.spans {
		n += s.End - s.Start
	}
	return n
}

// Reset empties the tape.
func (t *Tape) Reset() {
	t.spans = t.spans[:0]
	t.last = 0
}

// String encodes the tape as comma-separated "start-end" spans, e.g. "3-5,10-12".
func (t *Tape) String() string {
	parts := make([]string, len(t.spans))
	for i, s := range t.spans {
		parts[i] = strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
	}
	return strings.Join(parts, ",")
}

// ParseTape decodes the String form. An empty string is an empty tape.
func ParseTape(s string) (*Tape, error) {
	t := &Tape{}
	s = strings.TrimSpace(s)
	if s == "" {
		return t, nil
	}

	for _, part := range strings.Split(s, ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("%w: span %q", ErrBadTape, part)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("%w: span %q: %v", ErrBadTape, part, err)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("%w: span %q: %v", ErrBadTape, part, err)
		}

		switch {
		case start < 1 || end <= start:
			return nil, fmt.Errorf("%w: empty or negative span %q", ErrBadTape, part)
		case len(t.spans) > 0 && start <= t.spans[len(t.spans)-1].End:
			// Adjacent spans would have been merged by Record
			return nil, fmt.Errorf("%w: span %q overlaps or touches the previous one", ErrBadTape, part)
		}
		t.spans = append(t.spans, Span{Start: start, End: end})
		t.last = end - 1
	}
	return t, nil
}
