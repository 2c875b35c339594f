package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/clock"
	"github.com/brk3/streaks/internal/config"
	"github.com/brk3/streaks/internal/logger"
	"github.com/brk3/streaks/internal/storage/bolt"
	"github.com/brk3/streaks/internal/tracker"
	"github.com/brk3/streaks/pkg/habit"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Track habits, streaks and achievements",
	Long: `
	Streaks is a local-first habit tracker. Define habits, record daily
	completions, and watch streaks, analytics and achievements build up.
	All data lives in a single local database file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init(logger.ParseLevel(cfg.LogLevel))
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// openTracker opens the local database and loads the tracker. The returned
// closer must run before the process exits so bolt releases its file lock.
func openTracker() (*tracker.Tracker, func(), error) {
	store, err := bolt.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database %s: %w", cfg.DBPath, err)
	}
	t := tracker.Open(store, clock.System{})
	return t, func() { _ = store.Close() }, nil
}

// findHabit resolves a CLI argument to a habit, by id first, then by unique
// name match (case-insensitive).
func findHabit(t *tracker.Tracker, arg string) (habit.Habit, error) {
	if h, ok := t.Get(arg); ok {
		return h, nil
	}

	var matches []habit.Habit
	for _, h := range t.Habits() {
		if strings.EqualFold(h.Name, arg) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return habit.Habit{}, fmt.Errorf("no habit named %q", arg)
	default:
		return habit.Habit{}, fmt.Errorf("%d habits named %q, use the id", len(matches), arg)
	}
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(cmd *cobra.Command, prompt string) bool {
	cmd.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
