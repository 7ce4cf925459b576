package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cartrun/internal/games/cartrun"
	"github.com/vovakirdan/cartrun/internal/platform/tui"
	"github.com/vovakirdan/cartrun/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recorded runs, newest first. In the interactive browser, Enter
replays the selected run and D deletes it.

Examples:
  cartrun runs
  cartrun runs --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a text listing instead of the browser")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs in the text listing")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open recordings database: %w", err)
	}
	defer store.Close()

	if flagRunsPlain {
		return printRuns(os.Stdout, store, flagRunsLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	id, err := tui.RunRuns(store, cartrun.GameID, width, height)
	if err != nil || id == "" {
		return err
	}
	return playback(store, id)
}

func printRuns(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(cartrun.GameID, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'cartrun play' to record the first one!")
		return nil
	}

	total, err := store.CountRuns(cartrun.GameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-8s  %-16s  %-6s  %-7s  %s\n", "ID", "Date", "Score", "Ticks", "Seed")
	fmt.Fprintf(w, "  %-8s  %-16s  %-6s  %-7s  %s\n", "--", "----", "-----", "-----", "----")
	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(w, "  %-8s  %-16s  %-6d  %-7d  %d\n",
			id, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Score, r.Ticks, r.Seed)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Showing %d of %d runs.\n", len(runs), total)
	fmt.Fprintln(w, "Run 'cartrun replay <id>' to watch a run.")
	return nil
}
