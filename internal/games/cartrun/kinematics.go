package cartrun

import (
	"math"
	"time"

	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
)

// Cart is the player's vehicle. Y is the height of its base; DY > 0 is downward.
type Cart struct {
	X, Y          float64
	Width, Height float64
	DY            float64
	OnTrack       bool

	Jumping    bool          // Jump extension phase is active
	JumpStart  time.Duration // Logical time of take-off
	JumpStartY float64       // Base height at take-off
	ForceFall  bool          // Jump budget spent; no boost until the next landing
}

// NewCart places a cart at its spawn point, resting on the track.
func NewCart(cfg config.CartConfig) Cart {
	return Cart{
		X:       cfg.X,
		Y:       cfg.StartY,
		Width:   cfg.Width,
		Height:  cfg.Height,
		OnTrack: true,
	}
}

// Rect returns the cart's bounding box (top-left origin).
func (c Cart) Rect() core.RectF {
	return core.RectF{X: c.X, Y: c.Y - c.Height, W: c.Width, H: c.Height}
}

// ApplyGravity accelerates an airborne cart toward terminal velocity.
// Nothing happens on the track or once the cart is below floor.
func ApplyGravity(c *Cart, p config.PhysicsConfig, floor float64) {
	if c.OnTrack || c.Y >= floor {
		return
	}
	c.DY = math.Min(c.DY+p.Gravity, p.MaxFallSpeed)
}

// ApplyJump handles take-off and the variable-height extension phase.
//
// Take-off needs the cart on the track with jump held. While the jump stays
// held, each tick adds JumpBoost of upward speed (capped at MaxRiseSpeed)
// until JumpWindow elapses or the cart has risen MaxJumpHeight; either cap
// sets ForceFall, which blocks boosting until the cart lands.
func ApplyJump(c *Cart, p config.PhysicsConfig, held bool, now time.Duration) {
	if c.OnTrack && held {
		c.OnTrack = false
		c.Jumping = true
		c.JumpStart = now
		c.JumpStartY = c.Y
		c.DY = -p.JumpImpulse
		return
	}

	if !held {
		c.Jumping = false
		return
	}
	if !c.Jumping || c.ForceFall || c.OnTrack {
		return
	}

	if now-c.JumpStart >= p.JumpWindow || c.JumpStartY-c.Y >= p.MaxJumpHeight {
		c.ForceFall = true
		c.Jumping = false
		return
	}
	c.DY = math.Max(c.DY-p.JumpBoost, -p.MaxRiseSpeed)
}
