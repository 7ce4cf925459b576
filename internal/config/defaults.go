package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/cartrun.yaml
var defaultCartRunYAML []byte

// DefaultCartRunConfig returns the default cart runner configuration.
// It mirrors defaults/cartrun.yaml.
func DefaultCartRunConfig() CartRunConfig {
	return CartRunConfig{
		World: WorldConfig{
			Width:  800,
			Height: 500,
		},
		Cart: CartConfig{
			X:      50,
			StartY: 300,
			Width:  20,
			Height: 20,
		},
		Physics: PhysicsConfig{
			Gravity:         0.5,
			MaxFallSpeed:    8,
			JumpImpulse:     3,
			JumpBoost:       2,
			MaxRiseSpeed:    8,
			JumpWindow:      100 * time.Millisecond,
			MaxJumpHeight:   500.0 / 8,
			LookaheadFactor: 2,
		},
		Track: TrackConfig{
			SegmentWidth:    50,
			ScrollSpeed:     3,
			FlatRun:         10,
			GapProbability:  0.2,
			GapOffset:       50,
			StepProbability: 0.1,
			StepOffset:      20,
			MinY:            100,
			MaxY:            400,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCartRunYAML
}
