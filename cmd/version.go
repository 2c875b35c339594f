package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/brk3/streaks/pkg/versioninfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `The "version" command displays the current version info for both
the CLI and the server if one is reachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Client Version: %s\n", versioninfo.Version)

		resp, err := http.Get(cfg.APIBaseURL + "/version")
		if err != nil {
			return
		}
		defer resp.Body.Close()
		serverVersion := &versioninfo.VersionInfo{}
		if err := json.NewDecoder(resp.Body).Decode(serverVersion); err != nil {
			return
		}
		cmd.Printf("Server Version: %s\n", serverVersion.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
