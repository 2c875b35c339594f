package cmd

import (
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <habit>",
	Short: "Record one completion for today",
	Long:  `The "done" command adds one completion for today and refreshes streaks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		h, err := findHabit(t, args[0])
		if err != nil {
			return err
		}

		after, _ := t.IncrementToday(h.ID)
		cmd.Printf("%s %s: %d today, streak %s\n",
			after.Emoji, after.Name, todayCount(after),
			streakStyle.Render(plural(after.CurrentStreak, "day")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
