package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/apiclient"
	"github.com/brk3/streaks/internal/nudge"
	"github.com/brk3/streaks/internal/nudge/resend"
)

var (
	nudgeFrom   string
	resendToken string
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder for streaks expiring at midnight",
	Long: `The "nudge" command checks a running server for habits completed
yesterday but not yet today, and emails a reminder. Meant to run from cron
in the evening.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resendToken = os.Getenv("STREAKS_RESEND_API_KEY"); resendToken == "" {
			return fmt.Errorf("STREAKS_RESEND_API_KEY environment variable is not set")
		}
		if cfg.NotifyEmail == "" {
			return fmt.Errorf("notify_email is not set in config")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &resend.Notifier{
			APIKey: resendToken,
			From:   nudgeFrom,
			To:     cfg.NotifyEmail,
		}
		client := apiclient.New(cfg.APIBaseURL)
		return nudge.Run(cmd.Context(), client, n, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
	nudgeCmd.Flags().StringVar(&nudgeFrom, "from", "streaks@resend.dev", "sender address")
}
