// cartrun is an endless cart runner for the terminal.
//
// Usage:
//
//	cartrun play              - Play (each finished run is recorded)
//	cartrun sim               - Run headlessly with a scripted autopilot
//	cartrun runs              - Browse recorded runs
//	cartrun replay <id>       - Watch or verify a recorded run
//	cartrun config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.cartrun/runs.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/games/cartrun"
	"github.com/vovakirdan/cartrun/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cartrun",
	Short: "Cart Runner - jump the gaps of an endless track",
	Long: `Cart Runner is a terminal side-scroller: a cart rides an endless track
and has to jump the gaps. Every segment that scrolls past scores a point.

Available commands:
  play     - Play the game
  sim      - Headless run with an autopilot
  runs     - Browse recorded runs
  replay   - Watch or verify a recorded run
  config   - Print the effective config

Examples:
  cartrun play
  cartrun play --seed 42
  cartrun sim --ticks 3600 --jump-every 45
  cartrun runs --plain
  cartrun replay 1a2b3c4d --verify`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cartrun.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cartrun/runs.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Interactive commands own the terminal,
// so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cartrun",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadGame creates a cart runner from the effective config and returns
// that config as YAML for the recording.
func loadGame() (registry.Game, []byte, error) {
	game, err := registry.Create(cartrun.GameID, nil)
	if err != nil {
		return nil, nil, err
	}
	cfgYAML, err := game.MarshalConfig()
	if err != nil {
		return nil, nil, err
	}
	return game, cfgYAML, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
