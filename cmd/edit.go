package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/dateutil"
)

// maxEditCount caps direct date edits at the input boundary; the store
// itself accepts any non-negative count.
const maxEditCount = 20

var editCmd = &cobra.Command{
	Use:   "edit <habit> <date> <count>",
	Short: "Set the completion count for a specific date",
	Long: `The "edit" command sets the completion count for any date
(YYYY-MM-DD). A count of 0 removes the record for that day.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[1]
		if _, ok := dateutil.Parse(date); !ok {
			return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
		}

		count, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("count must be a number, got %q", args[2])
		}
		if count < 0 {
			count = 0
		}
		if count > maxEditCount {
			count = maxEditCount
		}

		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		h, err := findHabit(t, args[0])
		if err != nil {
			return err
		}

		after, _ := t.EditDate(h.ID, date, count)
		cmd.Printf("%s %s: %s set to %d (streak %d, best %d)\n",
			after.Emoji, after.Name, date, count, after.CurrentStreak, after.BestStreak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
