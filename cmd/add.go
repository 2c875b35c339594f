package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/pkg/habit"
)

var (
	addEmoji       string
	addCategory    string
	addWeeklyGoal  int
	addMonthlyGoal int
	addTemplate    string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new habit",
	Long: `The "add" command creates a habit, either from scratch or from a
built-in template (see "streaks templates").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addHabit(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addEmoji, "emoji", "", "display glyph")
	addCmd.Flags().StringVar(&addCategory, "category", string(habit.CategoryOther),
		"one of: "+categoryList())
	addCmd.Flags().IntVar(&addWeeklyGoal, "weekly-goal", 0, "completions per week target")
	addCmd.Flags().IntVar(&addMonthlyGoal, "monthly-goal", 0, "completions per month target")
	addCmd.Flags().StringVar(&addTemplate, "template", "", "start from a built-in template")
}

func categoryList() string {
	names := make([]string, 0, len(habit.Categories))
	for _, c := range habit.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func addHabit(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	emoji := addEmoji
	category := habit.Category(addCategory)
	weeklyGoal := addWeeklyGoal
	monthlyGoal := addMonthlyGoal

	if addTemplate != "" {
		tpl, ok := habit.FindTemplate(addTemplate)
		if !ok {
			return fmt.Errorf("no template named %q", addTemplate)
		}
		if name == "" {
			name = tpl.Name
		}
		if emoji == "" {
			emoji = tpl.Emoji
		}
		category = tpl.Category
		if weeklyGoal == 0 {
			weeklyGoal = tpl.WeeklyGoal
		}
	}

	// goals below zero make no sense, fall back to "no goal"
	if weeklyGoal < 0 {
		weeklyGoal = 0
	}
	if monthlyGoal < 0 {
		monthlyGoal = 0
	}

	t, closer, err := openTracker()
	if err != nil {
		return err
	}
	defer closer()

	h, ok := t.Add(name, emoji, category, weeklyGoal, monthlyGoal)
	if !ok {
		return fmt.Errorf("habit name is required")
	}

	cmd.Printf("Added %s %s (%s)\n", h.Emoji, h.Name, h.ID)
	return nil
}
