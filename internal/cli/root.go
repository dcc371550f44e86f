package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

var rootCmd = &cobra.Command{
	Use:   "noughts",
	Short: "Client for the noughts match server",
	Long:  "Command-line client for joining matches, submitting turns and watching live games on a noughts server.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		client = NewClient(cfg.ServerURL)
	},
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg = DefaultConfig()

	rootCmd.PersistentFlags().StringVarP(&cfg.ServerURL, "server", "s", cfg.ServerURL, "server URL")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", OutputText, "output format (text or json)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(healthCmd)
}
