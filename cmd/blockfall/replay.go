package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/logging"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recorded game from its seed, ruleset and input journal,
and check that it ends with the stored score, lines and level.

Exits with status 1 when the result differs.

Examples:
  blockfall runs
  blockfall replay 3f0c6a9e-2b51-4c1e-9a0e-7d1c2f4b8a10
  blockfall replay <run-id> --debug   # log every engine event`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := logging.Stderr("blockfall-replay", flagDebug)
	if code := replayRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagDBPath, args[0], logger); code != 0 {
		os.Exit(code)
	}
}

// replayRun re-simulates one stored run and returns the process exit code.
// The store is closed before returning so callers may exit right away.
func replayRun(out, errOut io.Writer, dbPath, id string, logger *log.Logger) int {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error opening runs database: %v\n", err)
		return 1
	}
	defer store.Close()

	run, err := store.LoadRun(id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(errOut, "Error: no run with id %q\n", id)
		fmt.Fprintln(errOut, "Run 'blockfall runs' to see recorded runs.")
		return 1
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error loading run: %v\n", err)
		return 1
	}

	res, err := blockfall.Replay(run, logger)
	if err != nil {
		fmt.Fprintf(errOut, "Error replaying run: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "Run %s (seed %d, %d steps, %d input frames)\n", run.ID, run.Seed, run.Steps, len(run.Frames))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-8s  %s\n", "", "Stored", "Replayed")
	fmt.Fprintf(out, "  %-8s  %-8d  %d\n", "Score", run.Score, res.Score)
	fmt.Fprintf(out, "  %-8s  %-8d  %d\n", "Lines", run.Lines, res.Lines)
	fmt.Fprintf(out, "  %-8s  %-8d  %d\n", "Level", run.Level, res.Level)
	fmt.Fprintln(out)

	if !res.Match {
		fmt.Fprintln(out, "MISMATCH")
		return 1
	}
	fmt.Fprintln(out, "OK")
	return 0
}
