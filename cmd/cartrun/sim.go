package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartrun/internal/core"
	"github.com/vovakirdan/cartrun/internal/replay"
	"github.com/vovakirdan/cartrun/internal/storage"
)

var (
	flagSimTicks     int
	flagSimJumpEvery int
	flagSimHold      int
	flagSimSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headlessly",
	Long: `Run the simulation without a terminal UI. An autopilot holds jump for
--hold ticks every --jump-every ticks (0 never jumps). The run stops at game
over or after --ticks ticks.

Examples:
  cartrun sim --seed 7
  cartrun sim --seed 7 --jump-every 40 --hold 4 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Start a jump every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagSimHold, "hold", 6, "Ticks to hold each jump")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run as a recording")
}

// autopilotTape scripts the jump input for ticks 1..ticks.
func autopilotTape(ticks, every, hold int) *replay.Tape {
	tape := &replay.Tape{}
	if every <= 0 || hold <= 0 {
		return tape
	}
	for tick := 1; tick <= ticks; tick++ {
		tape.Record(tick, (tick-1)%every < hold)
	}
	return tape
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	game, cfgYAML, err := loadGame()
	if err != nil {
		return err
	}

	cfg := runtimeConfig(core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)
	tape := autopilotTape(flagSimTicks, flagSimJumpEvery, flagSimHold)
	logger.Debug("simulating", "seed", cfg.Seed, "ticks", flagSimTicks, "tape", tape.String())

	st := replay.Run(game, cfg, tape, flagSimTicks)

	fmt.Printf("Seed:      %d\n", cfg.Seed)
	fmt.Printf("Ticks:     %d\n", st.Tick)
	fmt.Printf("Score:     %d\n", st.Score)
	fmt.Printf("Game over: %v\n", st.GameOver)

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Trim the tape to the ticks actually played
	played := &replay.Tape{}
	for tick := 1; tick <= st.Tick; tick++ {
		played.Record(tick, tape.Held(tick))
	}
	id, err := store.SaveRun(storage.Run{
		GameID:   game.ID(),
		Seed:     cfg.Seed,
		TickRate: cfg.TickRate,
		Ticks:    st.Tick,
		Score:    st.Score,
		Tape:     played.String(),
		Config:   string(cfgYAML),
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id)
	fmt.Printf("Saved:     %s\n", id)
	return nil
}
