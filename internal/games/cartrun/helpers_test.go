package cartrun

import (
	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
)

// scriptedSource replays a fixed list of draws, cycling when exhausted.
type scriptedSource struct {
	values []float64
	i      int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func scripted(values ...float64) SourceFactory {
	return func(int64) Source {
		return &scriptedSource{values: values}
	}
}

// flatOnly never draws a gap or a step.
var flatOnly = scripted(0.99)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(f SourceFactory) *Game {
	g := NewWithConfig(config.DefaultCartRunConfig())
	if f != nil {
		g.UseSource(f)
	}
	g.Reset(testRuntime(1))
	return g
}
