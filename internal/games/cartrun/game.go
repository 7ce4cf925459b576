// Package cartrun implements an endless cart runner.
// The cart rides rightward over a scrolling track of floor segments and must
// jump the gaps; every segment that scrolls off-screen scores one point.
package cartrun

import (
	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/registry"
)

// GameID is the registry identifier of the cart runner.
const GameID = "cartrun"

// Game implements the cart runner logic.
type Game struct {
	cart      Cart
	track     *Track
	gen       *Generator
	clock     *TickClock
	score     int  // Segments recycled this run
	gameOver  bool // Cart fell below the world
	tickCount int  // Ticks processed since the run started
	runtime   core.RuntimeConfig
	cfg       config.CartRunConfig
	newSource SourceFactory
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the config path used when the registry builds a game
// without an explicit config.
func SetConfigPath(path string) {
	configPath = path
}

// Load creates a cart runner from the config at path, falling back to the
// searched locations and the embedded defaults when path is empty.
func Load(path string) (*Game, error) {
	cfg, err := config.LoadCartRun(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig creates a cart runner with a fixed configuration.
func NewWithConfig(cfg config.CartRunConfig) *Game {
	return &Game{cfg: cfg, newSource: SeededSource}
}

// UseSource replaces the random source factory. Takes effect on the next Reset.
func (g *Game) UseSource(f SourceFactory) {
	g.newSource = f
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cart Runner"
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.CartRunConfig {
	return g.cfg
}

// MarshalConfig renders the run config as YAML.
func (g *Game) MarshalConfig() ([]byte, error) {
	return g.cfg.Marshal()
}

// Reset starts a fresh run with the runtime's seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.gen = NewGenerator(g.cfg.Track, g.newSource(runtime.Seed))
	g.clock = NewTickClock(runtime.TickRate)
	g.start()
}

// start resets the per-run state and lays the initial track.
func (g *Game) start() {
	g.cart = NewCart(g.cfg.Cart)
	g.track = NewTrack(g.gen.Initial(g.cfg.SegmentCount(), g.cfg.Cart.StartY), g.gen, g.cfg.Track.SegmentWidth)
	g.clock.Reset()
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
}

// restart begins the next run with a seed derived from the current one, so a
// session of restarts stays reproducible from its first seed.
func (g *Game) restart() {
	g.runtime.Seed = NextSeed(g.runtime.Seed)
	g.gen = NewGenerator(g.cfg.Track, g.newSource(g.runtime.Seed))
	g.start()
}

// NextSeed derives the seed of the run that follows a restart.
func NextSeed(seed int64) int64 {
	// 64-bit LCG step (Knuth MMIX constants), wrapping on overflow
	return int64(uint64(seed)*6364136223846793005 + 1442695040888963407) //#nosec G115 -- intentional wraparound
}

// Step advances the game by one tick.
//
// While the run is over the state is frozen; only a restart request is
// honored. Restart requests during a run are ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.clock.Advance()

	phys := g.cfg.Physics
	c := &g.cart

	c.Y += c.DY
	ApplyGravity(c, phys, g.cfg.World.Height)

	if c.Y > g.cfg.World.Height {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.track.Scroll(g.cfg.Track.ScrollSpeed)
	evicted := g.track.Recycle()
	g.score += evicted

	ResolveLanding(c, g.track.Segments(), g.cfg.Track.SegmentWidth, phys.LookaheadFactor)
	ApplyJump(c, phys, in.Has(core.ActionJump), g.clock.Now())

	return core.StepResult{State: g.State(), Evicted: evicted}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Tick:     g.tickCount,
		Seed:     g.runtime.Seed,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, "Cart Runner", func(cfgYAML []byte) (registry.Game, error) {
		if cfgYAML == nil {
			g, err := Load(configPath)
			if err != nil {
				return nil, err
			}
			return g, nil
		}
		cfg, err := config.Parse(cfgYAML)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(cfg), nil
	})
}
