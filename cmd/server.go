package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/internal/clock"
	"github.com/brk3/streaks/internal/logger"
	"github.com/brk3/streaks/internal/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long: `The "server" command serves the tracker over HTTP, including
Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.InitJSON(logger.ParseLevel(cfg.LogLevel))

		t, closer, err := openTracker()
		if err != nil {
			return err
		}
		defer closer()

		s := server.New(t, clock.System{})
		logger.Info("Starting server", "addr", cfg.ListenAddr, "db", cfg.DBPath)
		return http.ListenAndServe(cfg.ListenAddr, s.Router())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
