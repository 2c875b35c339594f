package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/analytics"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with streaks and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		habits := t.Habits()
		if len(habits) == 0 {
			cmd.Println("No habits yet. Try \"streaks add\" or \"streaks templates\".")
			return nil
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("%d completions today, %d active streaks",
			t.CompletionsToday(), t.ActiveStreaks())))
		cmd.Println()

		now := time.Now()
		for _, h := range habits {
			p := analytics.HabitProgress(h, now)
			line := fmt.Sprintf("%s %s", h.Emoji, titleStyle.Render(h.Name))
			if h.CurrentStreak > 0 {
				line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %s", plural(h.CurrentStreak, "day")))
			}
			cmd.Println(line)

			detail := fmt.Sprintf("   %s · best %d · today %d", h.Category, h.BestStreak, todayCount(h))
			if h.WeeklyGoal > 0 {
				detail += fmt.Sprintf(" · week %d/%d (%.0f%%)", p.WeeklyCompletions, h.WeeklyGoal, p.WeeklyProgress)
			}
			if h.MonthlyGoal > 0 {
				detail += fmt.Sprintf(" · month %d/%d (%.0f%%)", p.MonthlyCompletions, h.MonthlyGoal, p.MonthlyProgress)
			}
			cmd.Println(faintStyle.Render(detail))
			cmd.Println(faintStyle.Render("   id: " + h.ID))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
