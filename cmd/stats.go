package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analytics over the last 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		s := analytics.Calculate(t.Habits(), time.Now())

		cmd.Println(titleStyle.Render("Last 30 days"))
		cmd.Printf("  Total completions: %d\n", s.TotalCompletions)
		cmd.Printf("  Daily average:     %.1f\n", s.AverageDaily)
		cmd.Printf("  Consistency:       %d%%\n", s.ConsistencyScore)
		cmd.Printf("  Best day:          %s\n", s.BestDay)
		cmd.Printf("  Worst day:         %s\n", s.WorstDay)

		cmd.Println(titleStyle.Render("Weekly trend"))
		for _, p := range s.WeeklyTrend {
			cmd.Printf("  %s: %s\n", p.Week, bar(p.Completions))
		}

		if len(s.CategoryBreakdown) > 0 {
			cmd.Println(titleStyle.Render("By category"))
			for _, c := range s.CategoryBreakdown {
				cmd.Printf("  %-13s %3d (%.0f%%)\n", c.Category, c.Completions, c.Percentage)
			}
		}
		return nil
	},
}

func bar(n int) string {
	const maxWidth = 40
	width := n
	if width > maxWidth {
		width = maxWidth
	}
	out := ""
	for i := 0; i < width; i++ {
		out += "█"
	}
	return fmt.Sprintf("%s %d", streakStyle.Render(out), n)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
