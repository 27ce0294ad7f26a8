package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit  int
	flagDelete string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent finished runs, oldest first.

Examples:
  blockfall runs
  blockfall runs --limit 50
  blockfall runs --delete <run-id>`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the run with this id")
}

func runRuns(cmd *cobra.Command, _ []string) {
	var code int
	if flagDelete != "" {
		code = deleteRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagDBPath, flagDelete)
	} else {
		code = listRuns(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagDBPath, flagLimit)
	}
	if code != 0 {
		os.Exit(code)
	}
}

func deleteRun(out, errOut io.Writer, dbPath, id string) int {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error opening runs database: %v\n", err)
		return 1
	}
	defer store.Close()

	err = store.DeleteRun(id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(errOut, "Error: no run with id %q\n", id)
		return 1
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error deleting run: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Deleted run %s\n", id)
	return 0
}

func listRuns(out, errOut io.Writer, dbPath string, limit int) int {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error opening runs database: %v\n", err)
		return 1
	}
	defer store.Close()

	runs, err := store.RecentRuns(limit)
	if err != nil {
		fmt.Fprintf(errOut, "Error retrieving runs: %v\n", err)
		return 1
	}
	total, err := store.CountRuns()
	if err != nil {
		total = len(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'blockfall play' to record the first one!")
		return 0
	}

	slices.Reverse(runs)

	fmt.Fprintf(out, "  %-36s  %-8s  %-5s  %-5s  %s\n", "ID", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-36s  %-8s  %-5s  %-5s  %s\n", "--", "-----", "-----", "-----", "----")
	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-36s  %-8d  %-5d  %-5d  %s\n", r.ID, r.Score, r.Lines, r.Level, dateStr)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Showing %d of %d runs\n", len(runs), total)
	return 0
}
