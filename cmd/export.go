package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all habits to a backup file",
	Long: `The "export" command writes the full habit collection to a JSON
backup document (default streaks-export.json).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "streaks-export.json"
		if len(args) == 1 {
			path = args[0]
		}

		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		data, err := backup.Export(t.Habits(), time.Now())
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		cmd.Printf("Exported %d habit(s) to %s\n", len(t.Habits()), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
