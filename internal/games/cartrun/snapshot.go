package cartrun

import "github.com/vovakirdan/cartrun/internal/core"

// Span is one segment as the renderer sees it.
type Span struct {
	X0, X1 float64 // Left and right edge
	Y      float64 // Surface height
}

// Scene is a read-only copy of everything a presentation layer draws.
type Scene struct {
	Tick          int
	Seed          int64
	Score         int
	GameOver      bool
	RestartPrompt bool // Show "press to restart"
	Cart          core.RectF
	OnTrack       bool
	ForceFall     bool
	Segments      []Span
	WorldW        float64
	WorldH        float64
}

// Snapshot returns the current scene. The result shares no memory with the game.
func (g *Game) Snapshot() Scene {
	segs := g.track.Segments()
	spans := make([]Span, len(segs))
	w := g.cfg.Track.SegmentWidth
	for i, s := range segs {
		spans[i] = Span{X0: s.X, X1: s.X + w, Y: s.Y}
	}

	return Scene{
		Tick:          g.tickCount,
		Seed:          g.runtime.Seed,
		Score:         g.score,
		GameOver:      g.gameOver,
		RestartPrompt: g.gameOver,
		Cart:          g.cart.Rect(),
		OnTrack:       g.cart.OnTrack,
		ForceFall:     g.cart.ForceFall,
		Segments:      spans,
		WorldW:        g.cfg.World.Width,
		WorldH:        g.cfg.World.Height,
	}
}

// Hash folds the scene into a number for determinism checks.
func (s *Scene) Hash() uint64 {
	h := uint64(s.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(s.Cart.Y)) //#nosec G115 -- hash computation
	if s.GameOver {
		h = h*31 + 1
	}
	for _, sp := range s.Segments {
		h = h*31 + uint64(int64(sp.X0*2)) //#nosec G115 -- hash computation
		h = h*31 + uint64(int64(sp.Y*2))  //#nosec G115 -- hash computation
	}
	return h
}
