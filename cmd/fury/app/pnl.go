package app

import (
	"github.com/spf13/cobra"

	"github.com/furylabs/fury-go"
)

// NewPnLCommand creates the pnl command.
func (a *App) NewPnLCommand() *cobra.Command {
	var (
		token      string
		timestamps bool
	)

	cmd := &cobra.Command{
		Use:   "pnl ADDRESSES",
		Short: "Calculate profit and loss for wallets",
		Long: `PnL computes profit and loss server-side for a comma-separated list
of wallet addresses, optionally scoped to a single token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			result, err := client.Analytics.PnL(ctx, &fury.PnLRequest{
				Addresses:        args[0],
				TokenAddress:     token,
				IncludeTimestamp: timestamps,
			})
			if err != nil {
				return err
			}

			// The report shape is server-defined, so always render JSON.
			return a.printJSON(result)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "limit the report to one token mint")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "include timestamps in the report")

	return cmd
}
