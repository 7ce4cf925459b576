package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/registry"
	"github.com/vovakirdan/cartrun/internal/replay"
	"github.com/vovakirdan/cartrun/internal/storage"
)

// RunSaver persists finished runs. *storage.Store satisfies it.
type RunSaver interface {
	SaveRun(r storage.Run) (string, error)
}

// Options configures a play session.
type Options struct {
	Store      RunSaver    // Optional; finished runs are recorded when set
	Logger     *log.Logger // Optional; defaults to a discarding logger
	HoldGrace  int         // Ticks a jump press counts as held
	ConfigYAML string      // Game config stored with each recording
	Playback   *replay.Tape
}

// Model is the Bubble Tea model for playing (or watching) the cart runner.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     RunSaver
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      HoldTracker
	tape      *replay.Tape // Input of the current run
	playback  *replay.Tape // Non-nil when replaying a recording
	cfgYAML   string
	gameState core.GameState
	width     int
	height    int

	restartRequested bool
	paused           bool
	quitting         bool
	runSaved         bool   // Whether the current game over has been recorded
	lastRunID        string // ID of the most recent saved recording
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		store:    opts.Store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		hold:     NewHoldTracker(opts.HoldGrace),
		tape:     &replay.Tape{},
		playback: opts.Playback,
		cfgYAML:  opts.ConfigYAML,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "replay", m.playback != nil)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
			m.hold.Release()
		}
	case core.ActionJump:
		if m.gameState.GameOver {
			m.restartRequested = true
		} else if !m.paused {
			m.hold.Press()
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restartRequested = true
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is scaled to the screen, so the run itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.nextFrame()
	wasOver := m.gameState.GameOver

	result := m.game.Step(frame)
	m.hold.Advance()
	m.gameState = result.State

	switch {
	case result.Restarted:
		m.tape.Reset()
		m.runSaved = false
		m.logger.Info("run restarted", "seed", m.gameState.Seed)
	case !wasOver:
		m.tape.Record(m.gameState.Tick, frame.Has(core.ActionJump))
	}

	if m.gameState.GameOver && !m.runSaved {
		m.logger.Info("game over", "score", m.gameState.Score, "ticks", m.gameState.Tick, "seed", m.gameState.Seed)
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// nextFrame builds the input frame for the coming tick.
func (m *Model) nextFrame() core.InputFrame {
	if m.playback != nil {
		// Recordings cover a single run; restarts are not replayed
		m.restartRequested = false
		return m.playback.Frame(m.gameState.Tick + 1)
	}

	frame := core.JumpFrame(m.hold.Held() && !m.gameState.GameOver)
	if m.restartRequested {
		frame.Set(core.ActionRestart)
		m.restartRequested = false
		m.hold.Release()
	}
	return frame
}

// saveRun records the finished run. Saving is best-effort; the session
// continues when the store is unavailable.
func (m *Model) saveRun() {
	if m.store == nil || m.playback != nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Seed:     m.gameState.Seed,
		TickRate: m.config.TickRate,
		Ticks:    m.gameState.Tick,
		Score:    m.gameState.Score,
		Tape:     m.tape.String(),
		Config:   m.cfgYAML,
	})
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot locate home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".cartrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	switch {
	case m.paused:
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED  |  press p to resume ")
	case m.playback != nil:
		m.screen.DrawTextColored(m.screen.Width()-9, 0, " REPLAY ", core.ColorCyan)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Tape returns the input recorded for the current run.
func (m Model) Tape() *replay.Tape {
	return m.tape
}

// LastRunID returns the ID of the most recent saved recording, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok && m.lastRunID != "" {
		fmt.Printf("Last run saved as %s (score %d)\n", m.lastRunID, m.gameState.Score)
	}
	return nil
}
