package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/noughts/internal/api/request"
	"github.com/jdmorgan/noughts/internal/api/response"
)

var joinName string

var joinCmd = &cobra.Command{
	Use:   "join <player-id>",
	Short: "Join the next open match, or create a new one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := request.JoinMatchRequest{
			PlayerID:    args[0],
			DisplayName: joinName,
		}

		var match response.Match
		if err := client.Post("/api/v1/matches", req, &match); err != nil {
			return err
		}

		if cfg.Output == OutputJSON {
			return printJSON(cmd.OutOrStdout(), match)
		}
		printMatch(cmd.OutOrStdout(), &match)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <match-id>",
	Short: "Show the current status of a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var match response.Match
		if err := client.Get(fmt.Sprintf("/api/v1/matches/%s", args[0]), &match); err != nil {
			return err
		}

		if cfg.Output == OutputJSON {
			return printJSON(cmd.OutOrStdout(), match)
		}
		printMatch(cmd.OutOrStdout(), &match)
		return nil
	},
}

var (
	turnX int
	turnY int
)

var turnCmd = &cobra.Command{
	Use:   "turn <match-id> <player-id>",
	Short: "Submit a turn in a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := request.SubmitTurnRequest{
			PlayerID: args[1],
			X:        turnX,
			Y:        turnY,
		}

		if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/turns", args[0]), req, nil); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Turn placed at (%d, %d)\n", turnX, turnY)
		return nil
	},
}

func init() {
	joinCmd.Flags().StringVarP(&joinName, "name", "n", "", "display name")

	turnCmd.Flags().IntVarP(&turnX, "x", "x", 0, "column (0-2)")
	turnCmd.Flags().IntVarP(&turnY, "y", "y", 0, "row (0-2)")
	_ = turnCmd.MarkFlagRequired("x")
	_ = turnCmd.MarkFlagRequired("y")
}
