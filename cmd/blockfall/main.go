// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play              - Play a game locally
//	blockfall serve             - Start SSH server for remote play
//	blockfall runs              - List recorded runs
//	blockfall replay <run-id>   - Re-simulate a recorded run and check its result
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.blockfall/runs.db)
//	--config <path>     - Use a custom ruleset YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Log every engine event
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
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
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops tetromino pieces into a 10x20 well. Fill rows to clear
them, score points and speed up. The run ends when the stack reaches the top.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  runs     - List recorded runs
  replay   - Re-simulate a recorded run

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall serve --ssh :2222
  blockfall runs --limit 20
  blockfall replay 3f0c6a9e-...`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom ruleset YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the ruleset or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
