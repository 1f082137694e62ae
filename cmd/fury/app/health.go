package app

import (
	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command.
func (a *App) NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			health, err := client.HealthCheck(ctx)
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(health)
			}

			if health.Status == "ok" {
				a.printSuccess("%s is healthy", client.BaseURL())
			} else {
				a.printError("%s reports status %q", client.BaseURL(), health.Status)
			}
			return nil
		},
	}
}
