package cartrun

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cartrun/internal/config"
)

func TestGeneratorNextShapes(t *testing.T) {
	cfg := config.DefaultCartRunConfig().Track
	prev := Segment{X: 450, Y: 300}

	tests := []struct {
		name   string
		draws  []float64
		expect Segment
	}{
		{"flat continuation", []float64{0.5}, Segment{X: 500, Y: 300}},
		{"gap, level", []float64{0.1, 0.5}, Segment{X: 550, Y: 300}},
		{"gap, rising", []float64{0.0, 0.0}, Segment{X: 550, Y: 250}},
		{"gap, falling", []float64{0.19, 0.75}, Segment{X: 550, Y: 325}},
		{"step down", []float64{0.25, 0.5}, Segment{X: 500, Y: 310}},
		{"boundary draw is a step, not a gap", []float64{0.2, 0.0}, Segment{X: 500, Y: 300}},
		{"just above the step band is flat", []float64{0.31}, Segment{X: 500, Y: 300}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(cfg, &scriptedSource{values: tc.draws})
			got := g.Next(prev)
			if got != tc.expect {
				t.Errorf("Next(%+v) = %+v, expected %+v", prev, got, tc.expect)
			}
		})
	}
}

func TestGeneratorClampsToBand(t *testing.T) {
	cfg := config.DefaultCartRunConfig().Track

	// Rising gap from the top of the band
	g := NewGenerator(cfg, &scriptedSource{values: []float64{0.0, 0.0}})
	if got := g.Next(Segment{X: 0, Y: 110}); got.Y != cfg.MinY {
		t.Errorf("rising gap should clamp to %v, got %v", cfg.MinY, got.Y)
	}

	// Step down from the bottom of the band
	g = NewGenerator(cfg, &scriptedSource{values: []float64{0.25, 0.99}})
	if got := g.Next(Segment{X: 0, Y: 395}); got.Y != cfg.MaxY {
		t.Errorf("step down should clamp to %v, got %v", cfg.MaxY, got.Y)
	}
}

func TestGeneratorInvariantsWithRealSource(t *testing.T) {
	cfg := config.DefaultCartRunConfig().Track
	g := NewGenerator(cfg, rand.New(rand.NewSource(7)))

	prev := Segment{X: 0, Y: 300}
	gaps := 0
	for i := 0; i < 5000; i++ {
		next := g.Next(prev)
		dx := next.X - prev.X
		if dx != cfg.SegmentWidth && dx != 2*cfg.SegmentWidth {
			t.Fatalf("draw %d: x step %v is neither one nor two segment widths", i, dx)
		}
		if dx == cfg.SegmentWidth && next.Y < prev.Y {
			t.Fatalf("draw %d: contiguous segment rose from %v to %v", i, prev.Y, next.Y)
		}
		if next.Y < cfg.MinY || next.Y > cfg.MaxY {
			t.Fatalf("draw %d: y %v outside [%v, %v]", i, next.Y, cfg.MinY, cfg.MaxY)
		}
		if dx == 2*cfg.SegmentWidth {
			gaps++
		}
		prev = next
	}

	// 20% gap weight; allow generous slack
	if gaps < 800 || gaps > 1200 {
		t.Errorf("gap count %d far from expected ~1000", gaps)
	}
}

func TestGeneratorInitial(t *testing.T) {
	cfg := config.DefaultCartRunConfig().Track
	g := NewGenerator(cfg, &scriptedSource{values: []float64{0.1, 0.5}})

	segs := g.Initial(16, 300)
	if len(segs) != 16 {
		t.Fatalf("Initial() returned %d segments, expected 16", len(segs))
	}
	for i := 0; i < cfg.FlatRun; i++ {
		want := Segment{X: float64(i) * cfg.SegmentWidth, Y: 300}
		if segs[i] != want {
			t.Errorf("flat segment %d = %+v, expected %+v", i, segs[i], want)
		}
	}
	// Every generated segment is a gap with this script
	for i := cfg.FlatRun; i < len(segs); i++ {
		if dx := segs[i].X - segs[i-1].X; dx != 2*cfg.SegmentWidth {
			t.Errorf("segment %d: dx = %v, expected a gap", i, dx)
		}
	}

	if short := g.Initial(3, 300); len(short) != cfg.FlatRun {
		t.Errorf("Initial() should never be shorter than the flat run, got %d", len(short))
	}
}

func TestTrackRecycle(t *testing.T) {
	cfg := config.DefaultCartRunConfig().Track
	g := NewGenerator(cfg, &scriptedSource{values: []float64{0.99}})
	tr := NewTrack(g.Initial(16, 300), g, cfg.SegmentWidth)

	tr.Scroll(50)
	if n := tr.Recycle(); n != 0 {
		t.Fatalf("front at x=-50 is not fully off-screen yet, recycled %d", n)
	}

	tr.Scroll(1)
	lastBefore := tr.Segments()[tr.Len()-1]
	if n := tr.Recycle(); n != 1 {
		t.Fatalf("front at x=-51 should be recycled, got %d", n)
	}
	if tr.Len() != 16 {
		t.Errorf("track length changed to %d", tr.Len())
	}
	if front := tr.Segments()[0]; front.X != -1 {
		t.Errorf("new front x = %v, expected -1", front.X)
	}
	if last := tr.Segments()[tr.Len()-1]; last.X != lastBefore.X+cfg.SegmentWidth {
		t.Errorf("appended segment x = %v, expected %v", last.X, lastBefore.X+cfg.SegmentWidth)
	}
}
