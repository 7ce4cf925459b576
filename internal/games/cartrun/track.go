package cartrun

import (
	"math/rand"

	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
)

// Segment is one fixed-width span of walkable track.
type Segment struct {
	X float64 // Left edge
	Y float64 // Top surface (larger = lower)
}

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFactory builds the generator's source for a run seed.
type SourceFactory func(seed int64) Source

// SeededSource is the default factory: math/rand seeded with the run seed.
func SeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Generator produces track segments by weighted random draw.
//
// One draw r picks the shape of the next segment:
//
//	r < gap                 gap of one segment width, elevation change of up to ±GapOffset
//	r < gap + step          contiguous step down of up to StepOffset
//	otherwise               flat continuation
type Generator struct {
	cfg    config.TrackConfig
	source Source
}

// NewGenerator creates a generator drawing from source.
func NewGenerator(cfg config.TrackConfig, source Source) *Generator {
	return &Generator{cfg: cfg, source: source}
}

// Next returns the segment that follows prev.
func (g *Generator) Next(prev Segment) Segment {
	w := g.cfg.SegmentWidth
	r := g.source.Float64()

	switch {
	case r < g.cfg.GapProbability:
		offset := g.source.Float64()*2*g.cfg.GapOffset - g.cfg.GapOffset
		return Segment{X: prev.X + 2*w, Y: g.clampY(prev.Y + offset)}
	case r < g.cfg.GapProbability+g.cfg.StepProbability:
		drop := g.source.Float64() * g.cfg.StepOffset
		return Segment{X: prev.X + w, Y: g.clampY(prev.Y + drop)}
	default:
		return Segment{X: prev.X + w, Y: prev.Y}
	}
}

// Initial builds the track a run starts on: FlatRun flat segments at startY
// from x=0, then generated segments up to count.
func (g *Generator) Initial(count int, startY float64) []Segment {
	if count < g.cfg.FlatRun {
		count = g.cfg.FlatRun
	}
	segments := make([]Segment, 0, count)
	for i := 0; i < g.cfg.FlatRun; i++ {
		segments = append(segments, Segment{X: float64(i) * g.cfg.SegmentWidth, Y: startY})
	}
	for len(segments) < count {
		segments = append(segments, g.Next(segments[len(segments)-1]))
	}
	return segments
}

func (g *Generator) clampY(y float64) float64 {
	return core.ClampF(y, g.cfg.MinY, g.cfg.MaxY)
}

// Track is the ordered, fixed-length segment sequence. Front is leftmost.
type Track struct {
	segments []Segment
	width    float64
	gen      *Generator
}

// NewTrack wraps an initial segment list. The list must not be empty.
func NewTrack(segments []Segment, gen *Generator, width float64) *Track {
	return &Track{segments: segments, gen: gen, width: width}
}

// Scroll moves every segment left by dx.
func (t *Track) Scroll(dx float64) {
	for i := range t.segments {
		t.segments[i].X -= dx
	}
}

// Recycle evicts the front segment once it is fully off-screen and appends
// a generated one. Returns the number of segments recycled (0 or 1).
func (t *Track) Recycle() int {
	if t.segments[0].X >= -t.width {
		return 0
	}
	next := t.gen.Next(t.segments[len(t.segments)-1])
	copy(t.segments, t.segments[1:])
	t.segments[len(t.segments)-1] = next
	return 1
}

// Segments returns the live segment list. Callers must not modify it.
func (t *Track) Segments() []Segment {
	return t.segments
}

// Len returns the number of segments.
func (t *Track) Len() int {
	return len(t.segments)
}
