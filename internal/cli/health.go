package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the server is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var status struct {
			Status string `json:"status"`
		}
		if err := client.Get("/api/v1/health", &status); err != nil {
			return err
		}

		if cfg.Output == OutputJSON {
			return printJSON(cmd.OutOrStdout(), status)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "server is %s\n", status.Status)
		return nil
	},
}
