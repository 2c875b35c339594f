package cmd

import (
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all habits and reset achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		if !clearYes && !confirm(cmd, "Delete ALL habits and achievements?") {
			cmd.Println("Aborted.")
			return nil
		}

		if err := t.ClearAll(); err != nil {
			return err
		}
		cmd.Println("All data cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
}
