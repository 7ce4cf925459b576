package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cartrun/internal/platform/tui"
	"github.com/vovakirdan/cartrun/internal/storage"
)

var flagHoldGrace int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing. Every finished run is recorded and can be replayed.

Controls:
  Space/Up   - Jump (hold for a higher jump)
  P/Esc      - Pause
  R/Space    - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Terminals report key presses but not releases, so a press counts as held
for --hold-grace ticks; keyboard auto-repeat keeps it held.

Examples:
  cartrun play
  cartrun play --seed 42 --fps 30
  cartrun play --config ./my-track.yaml --log-file cartrun.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldGrace, "hold-grace", tui.DefaultHoldGrace, "Ticks a jump press counts as held")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, cfgYAML, err := loadGame()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Logger:     logger,
		HoldGrace:  flagHoldGrace,
		ConfigYAML: string(cfgYAML),
	}

	// Recording is optional; the game still works without a database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open recordings database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	return tui.Run(game, runtimeConfig(width, height), opts)
}
