package replay

import (
	"testing"

	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/games/cartrun"
)

func runtimeFor(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestRunReproducesLiveSession(t *testing.T) {
	cfg := runtimeFor(2024)

	live := cartrun.NewWithConfig(config.DefaultCartRunConfig())
	live.Reset(cfg)
	var tape Tape
	var st core.GameState
	for i := 0; i < 3000 && !st.GameOver; i++ {
		held := i%37 < 6
		st = live.Step(core.JumpFrame(held)).State
		tape.Record(st.Tick, held)
	}

	replayed := Run(cartrun.NewWithConfig(config.DefaultCartRunConfig()), cfg, &tape, st.Tick)
	if replayed != st {
		t.Errorf("replay ended in %+v, live run ended in %+v", replayed, st)
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	g := cartrun.NewWithConfig(config.DefaultCartRunConfig())
	st := Run(g, runtimeFor(1), &Tape{}, 25)
	if st.GameOver || st.Tick != 25 {
		t.Errorf("state = %+v, expected a live run at tick 25", st)
	}
}

func TestVerify(t *testing.T) {
	cfg := runtimeFor(77)
	tape, err := ParseTape("30-36,90-95")
	if err != nil {
		t.Fatal(err)
	}

	g := cartrun.NewWithConfig(config.DefaultCartRunConfig())
	want := Run(g, cfg, tape, 400)

	if _, ok := Verify(g, cfg, tape, want.Tick, want.Score); !ok {
		t.Error("Verify should accept the recorded outcome")
	}
	if _, ok := Verify(g, cfg, tape, want.Tick, want.Score+1); ok {
		t.Error("Verify should reject a tampered score")
	}
}
