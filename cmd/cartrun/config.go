package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartrun/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML: --config if given, then
~/.cartrun/configs/cartrun.yaml, then ./configs/cartrun.yaml, then the
built-in defaults. The output is a valid starting point for a custom config.

Examples:
  cartrun config > my-track.yaml
  cartrun config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	_, data, err := loadGame()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
