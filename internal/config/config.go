// Package config provides YAML-based configuration loading for the cart runner.
package config

import "time"

// CartRunConfig contains all tunables of the cart runner simulation.
// Units are world units (one per playfield pixel) and ticks.
type CartRunConfig struct {
	World   WorldConfig   `yaml:"world"`
	Cart    CartConfig    `yaml:"cart"`
	Physics PhysicsConfig `yaml:"physics"`
	Track   TrackConfig   `yaml:"track"`
}

// WorldConfig defines the playfield. A cart whose base passes below Height is lost.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CartConfig defines the cart's fixed column, spawn height and size.
type CartConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines cart kinematics.
type PhysicsConfig struct {
	Gravity         float64       `yaml:"gravity"`          // Added to dy per airborne tick
	MaxFallSpeed    float64       `yaml:"max_fall_speed"`   // Terminal downward speed
	JumpImpulse     float64       `yaml:"jump_impulse"`     // Upward speed at take-off
	JumpBoost       float64       `yaml:"jump_boost"`       // Upward speed added per held tick
	MaxRiseSpeed    float64       `yaml:"max_rise_speed"`   // Cap on upward speed
	JumpWindow      time.Duration `yaml:"jump_window"`      // How long holding keeps boosting
	MaxJumpHeight   float64       `yaml:"max_jump_height"`  // Boost stops past this rise
	LookaheadFactor float64       `yaml:"lookahead_factor"` // Landing tolerance, in multiples of dy
}

// TrackConfig defines segment geometry and the generator's draw weights.
type TrackConfig struct {
	SegmentWidth    float64 `yaml:"segment_width"`
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	FlatRun         int     `yaml:"flat_run"` // Flat segments at the start of every run
	GapProbability  float64 `yaml:"gap_probability"`
	GapOffset       float64 `yaml:"gap_offset"` // Max elevation change across a gap, either way
	StepProbability float64 `yaml:"step_probability"`
	StepOffset      float64 `yaml:"step_offset"` // Max drop of a contiguous step-down
	MinY            float64 `yaml:"min_y"`
	MaxY            float64 `yaml:"max_y"`
}

// SegmentCount returns how many segments the track holds: enough to cover the
// playfield width.
func (c CartRunConfig) SegmentCount() int {
	n := int(c.World.Width / c.Track.SegmentWidth)
	if float64(n)*c.Track.SegmentWidth < c.World.Width {
		n++
	}
	if n < c.Track.FlatRun {
		n = c.Track.FlatRun
	}
	return n
}
