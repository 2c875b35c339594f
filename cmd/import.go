package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/backup"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all habits from a backup file",
	Long: `The "import" command replaces the current habit collection with the
contents of a backup document. Streaks are recomputed on import; nothing
changes if the document is malformed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		habits, err := backup.Import(data)
		if err != nil {
			return fmt.Errorf("invalid backup document: %w", err)
		}

		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		t.Import(habits)
		cmd.Printf("Imported %d habit(s)\n", len(habits))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
