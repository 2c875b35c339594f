package cmd

import (
	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <habit>",
	Short: "Delete a habit and its history",
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

		if !rmYes && !confirm(cmd, "Delete \""+h.Name+"\" and all its completions?") {
			cmd.Println("Aborted.")
			return nil
		}

		t.Delete(h.ID)
		cmd.Printf("Deleted %s\n", h.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "skip the confirmation prompt")
}
