package cmd

import (
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <habit>",
	Short: "Take back one of today's completions",
	Long: `The "undo" command removes one completion recorded today. Nothing
happens if the count is already zero.`,
	Args: cobra.ExactArgs(1),
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

		after, _ := t.DecrementToday(h.ID)
		cmd.Printf("%s %s: %d today, streak %s\n",
			after.Emoji, after.Name, todayCount(after),
			streakStyle.Render(plural(after.CurrentStreak, "day")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
