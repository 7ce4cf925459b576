package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadCartRun loads the cart runner configuration.
// Search order: customPath -> ~/.cartrun/configs/cartrun.yaml -> ./configs/cartrun.yaml -> embedded default
func LoadCartRun(customPath string) (CartRunConfig, error) {
	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CartRunConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CartRunConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Search locations are best-effort: unreadable or broken files fall through
	candidates := []string{userConfigPath("cartrun.yaml"), filepath.Join("configs", "cartrun.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultCartRunYAML)
	if err != nil {
		return DefaultCartRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so partial files only override
// the keys they set, then validates the result.
func Parse(data []byte) (CartRunConfig, error) {
	cfg := DefaultCartRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CartRunConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CartRunConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c CartRunConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable world.
func (c CartRunConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Cart.Width <= 0 || c.Cart.Height <= 0:
		return fmt.Errorf("%w: cart size must be positive", ErrInvalid)
	case c.Track.SegmentWidth <= 0:
		return fmt.Errorf("%w: segment_width must be positive", ErrInvalid)
	case c.Track.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll_speed must be positive", ErrInvalid)
	case c.Track.FlatRun < 1:
		return fmt.Errorf("%w: flat_run must be at least 1", ErrInvalid)
	case c.Track.MinY > c.Track.MaxY:
		return fmt.Errorf("%w: min_y %.1f is above max_y %.1f", ErrInvalid, c.Track.MinY, c.Track.MaxY)
	case c.Track.MaxY > c.World.Height:
		return fmt.Errorf("%w: max_y %.1f is below the world floor %.1f", ErrInvalid, c.Track.MaxY, c.World.Height)
	case c.Cart.StartY < c.Track.MinY || c.Cart.StartY > c.Track.MaxY:
		return fmt.Errorf("%w: start_y %.1f is outside [min_y, max_y]", ErrInvalid, c.Cart.StartY)
	case !isProbability(c.Track.GapProbability) || !isProbability(c.Track.StepProbability):
		return fmt.Errorf("%w: probabilities must be within [0, 1]", ErrInvalid)
	case c.Track.GapProbability+c.Track.StepProbability > 1:
		return fmt.Errorf("%w: gap_probability + step_probability exceeds 1", ErrInvalid)
	case c.Track.GapOffset < 0 || c.Track.StepOffset < 0:
		return fmt.Errorf("%w: offsets must not be negative", ErrInvalid)
	case c.Physics.Gravity <= 0 || c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: gravity and max_fall_speed must be positive", ErrInvalid)
	case c.Physics.JumpWindow <= 0:
		return fmt.Errorf("%w: jump_window must be positive", ErrInvalid)
	case c.Physics.MaxRiseSpeed <= 0 || c.Physics.MaxJumpHeight <= 0:
		return fmt.Errorf("%w: max_rise_speed and max_jump_height must be positive", ErrInvalid)
	case c.Physics.LookaheadFactor < 1:
		return fmt.Errorf("%w: lookahead_factor must be at least 1", ErrInvalid)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cartrun", "configs", filename)
}
