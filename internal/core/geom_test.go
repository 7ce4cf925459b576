package core

import "testing"

func TestSpansOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aLo, aHi float64
		bLo, bHi float64
		expected bool
	}{
		{"cart inside segment", 50, 70, 40, 90, true},
		{"cart right edge inside", 50, 70, 65, 115, true},
		{"cart left edge inside", 50, 70, 10, 60, true},
		{"touching on the right (no overlap)", 50, 70, 70, 120, false},
		{"touching on the left (no overlap)", 50, 70, 0, 50, false},
		{"disjoint", 50, 70, 200, 250, false},
		{"cart left edge on segment left edge", 50, 70, 50, 100, true},
		{"segment inside wide cart", 0, 100, 20, 40, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SpansOverlap(tc.aLo, tc.aHi, tc.bLo, tc.bHi)
			if result != tc.expected {
				t.Errorf("SpansOverlap() = %v, expected %v", result, tc.expected)
			}
			if reverse := SpansOverlap(tc.bLo, tc.bHi, tc.aLo, tc.aHi); reverse != tc.expected {
				t.Errorf("SpansOverlap() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	f := RectF{X: 50, Y: 280, W: 20, H: 20}
	if f.Right() != 70 || f.Bottom() != 300 {
		t.Errorf("RectF edges = (%v, %v), expected (70, 300)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{250, 100, 400, 250},
		{60, 100, 400, 100},
		{449.5, 100, 400, 400},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := JumpFrame(true)
	if !f.Has(ActionJump) {
		t.Fatal("JumpFrame(true) should have ActionJump")
	}
	f.Set(ActionRestart)
	f.Unset(ActionJump)
	if f.Has(ActionJump) || !f.Has(ActionRestart) {
		t.Errorf("unexpected frame after Unset: %v", f.Actions)
	}
	f.Clear()
	if f.Has(ActionRestart) {
		t.Error("Clear should drop every action")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
}
