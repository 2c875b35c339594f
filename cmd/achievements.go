package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked and locked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		unlocked := 0
		for _, a := range t.Achievements() {
			if a.Unlocked {
				unlocked++
				cmd.Printf("%s %s — %s (unlocked %s)\n",
					a.Icon, titleStyle.Render(a.Title), a.Description, a.UnlockedAt)
			} else {
				cmd.Println(lockedStyle.Render(fmt.Sprintf("🔒 %s — %s", a.Title, a.Description)))
			}
		}
		cmd.Printf("\n%d of %d unlocked\n", unlocked, len(t.Achievements()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
