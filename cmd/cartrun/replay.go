package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/platform/tui"
	"github.com/vovakirdan/cartrun/internal/registry"
	"github.com/vovakirdan/cartrun/internal/replay"
	"github.com/vovakirdan/cartrun/internal/storage"
)

var flagReplayVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch or verify a recorded run",
	Long: `Play back a recorded run in the terminal. The ID may be shortened to any
unique prefix. With --verify the run is replayed headlessly and checked
against the recorded score.

Examples:
  cartrun replay 1a2b3c4d
  cartrun replay 1a2b3c4d --verify`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerify, "verify", false, "Replay headlessly and compare the outcome")
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open recordings database: %w", err)
	}
	defer store.Close()

	return playback(store, args[0])
}

// recording is a stored run decoded for playback.
type recording struct {
	run     *storage.Run
	tape    *replay.Tape
	game    registry.Game
	runtime core.RuntimeConfig
}

func loadRecording(store *storage.Store, id string) (*recording, error) {
	run, err := store.RunByPrefix(id)
	if err != nil {
		return nil, err
	}
	tape, err := replay.ParseTape(run.Tape)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}

	// Runs recorded without a config were played on the defaults
	cfgYAML := config.DefaultYAML()
	if run.Config != "" {
		cfgYAML = []byte(run.Config)
	}
	game, err := registry.Create(run.GameID, cfgYAML)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}

	return &recording{
		run:  run,
		tape: tape,
		game: game,
		runtime: core.RuntimeConfig{
			ScreenW:  core.DefaultConfig().ScreenW,
			ScreenH:  core.DefaultConfig().ScreenH,
			TickRate: run.TickRate,
			Seed:     run.Seed,
		},
	}, nil
}

// playback shows a recording in the TUI, or verifies it with --verify.
func playback(store *storage.Store, id string) error {
	rec, err := loadRecording(store, id)
	if err != nil {
		return err
	}

	if flagReplayVerify {
		return verifyRecording(rec)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := rec.runtime
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	return tui.Run(rec.game, cfg, tui.Options{
		Logger:   logger,
		Playback: rec.tape,
	})
}

func verifyRecording(rec *recording) error {
	st, ok := replay.Verify(rec.game, rec.runtime, rec.tape, rec.run.Ticks, rec.run.Score)

	fmt.Printf("Run:       %s\n", rec.run.ID)
	fmt.Printf("Recorded:  score %d after %d ticks\n", rec.run.Score, rec.run.Ticks)
	fmt.Printf("Replayed:  score %d after %d ticks (game over: %v)\n", st.Score, st.Tick, st.GameOver)

	if !ok {
		return fmt.Errorf("replay of %s diverged from the recording", rec.run.ID)
	}
	fmt.Println("Verified:  OK")
	return nil
}
