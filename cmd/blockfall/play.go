package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/logging"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the home screen.

Controls:
  Left/Right or A/D  - Move (on the home screen: change start level)
  Up/W/X             - Rotate clockwise
  Down/S             - Soft drop (hold)
  Space              - Hard drop
  P/Esc              - Pause
  Enter              - Start, or leave the run while paused or after game over
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10

Finished runs are stored in the database and can be replayed with
'blockfall replay <run-id>'.

Examples:
  blockfall play
  blockfall play --difficulty normal
  blockfall play --level 3 --seed 42
  blockfall play --config ./my-rules.yaml --log-file /tmp/blockfall.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (overrides --difficulty)")
}

func runPlay(_ *cobra.Command, _ []string) {
	rules := loadConfig()
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&rules, preset)
	}
	if flagLevel > 0 {
		rules.StartLevel = flagLevel
	}

	logger, closeLog, err := logging.New(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := blockfall.New(rules, logger)
	runErr := tui.Run(game, store, cfg, tui.Options{
		Logger:      logger,
		HoldRelease: rules.HoldRelease(),
	})

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
