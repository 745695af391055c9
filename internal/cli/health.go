package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var health HealthResult

			if err := client.Get("/api/v1/health", &health); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(health)
			return nil
		},
	}
}
