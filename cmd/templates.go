package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/streaks/pkg/habit"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in habit templates",
	Long: `The "templates" command lists the starter habits usable with
"streaks add --template <name>".`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range habit.Templates {
			cmd.Printf("%s %-20s %-12s weekly goal %d\n", t.Emoji, t.Name, t.Category, t.WeeklyGoal)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
