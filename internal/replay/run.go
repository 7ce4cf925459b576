package replay

import (
	"github.com/vovakirdan/cartrun/internal/core"
)

// Stepper is the slice of a game a replay drives.
type Stepper interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
}

// Run resets g with cfg and feeds it the tape until the run ends or maxTicks
// ticks have been processed. maxTicks <= 0 means no limit, which only makes
// sense for games that eventually end. Restarts are never requested.
func Run(g Stepper, cfg core.RuntimeConfig, tape *Tape, maxTicks int) core.GameState {
	g.Reset(cfg)
	st := g.State()
	for !st.GameOver && (maxTicks <= 0 || st.Tick < maxTicks) {
		st = g.Step(tape.Frame(st.Tick + 1)).State
	}
	return st
}

// Verify replays a recording and reports whether it reproduces the recorded
// score and tick count.
func Verify(g Stepper, cfg core.RuntimeConfig, tape *Tape, ticks, score int) (core.GameState, bool) {
	st := Run(g, cfg, tape, ticks)
	return st, st.Tick == ticks && st.Score == score
}
