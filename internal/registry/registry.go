// Package registry maps game IDs to factories. Recordings store a game ID
// and that game's config, so playback can rebuild the exact game that
// produced them.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/cartrun/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold pure simulation logic and no terminal dependencies.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh run. The RuntimeConfig provides tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState

	// MarshalConfig renders the game's effective config, as stored with recordings.
	MarshalConfig() ([]byte, error)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game. A nil cfgYAML means the game's configured default
// sources; otherwise the game must be built from exactly that config.
type Factory func(cfgYAML []byte) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds the game registered under id. Config errors from the
// factory are returned as is, wrapped with the game ID.
func Create(id string, cfgYAML []byte) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (known: %s)", id, knownIDs())
	}
	g, err := e.factory(cfgYAML)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return g, nil
}

func knownIDs() string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return strings.Join(ids, ", ")
}
