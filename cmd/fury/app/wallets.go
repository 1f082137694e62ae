package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/furylabs/fury-go"
)

// NewDistributeCommand creates the distribute command.
func (a *App) NewDistributeCommand() *cobra.Command {
	var (
		sender     string
		recipients []string
	)

	cmd := &cobra.Command{
		Use:     "distribute",
		Short:   "Distribute SOL from one wallet to many",
		GroupID: "wallets",
		Example: `  fury distribute --sender funder1 \
    --recipient wallet1:0.5 --recipient wallet2:0.25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			parsed, err := parseRecipients(recipients)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Wallets.Distribute(ctx, &fury.DistributeRequest{
				Sender:     sender,
				Recipients: parsed,
			})
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(resp)
			}
			a.printTransactions(resp.Transactions)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "funding wallet address (required)")
	cmd.Flags().StringArrayVarP(&recipients, "recipient", "r", nil, "recipient as ADDRESS:AMOUNT, repeatable (required)")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("recipient")

	return cmd
}

// NewConsolidateCommand creates the consolidate command.
func (a *App) NewConsolidateCommand() *cobra.Command {
	var (
		sources    []string
		percentage float64
		token      string
	)

	cmd := &cobra.Command{
		Use:     "consolidate RECEIVER_ADDRESS",
		Short:   "Consolidate balances from many wallets into one",
		GroupID: "wallets",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Wallets.Consolidate(ctx, &fury.ConsolidateRequest{
				SourceAddresses: sources,
				ReceiverAddress: args[0],
				Percentage:      percentage,
				TokenAddress:    token,
			})
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(resp)
			}
			a.printTransactions(resp.Transactions)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sources, "sources", nil, "source wallet addresses (required)")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "percentage of each balance to move (default 100)")
	cmd.Flags().StringVar(&token, "token", "", "token mint address (empty consolidates native SOL)")
	_ = cmd.MarkFlagRequired("sources")

	return cmd
}

// parseRecipients parses repeated ADDRESS:AMOUNT flag values.
func parseRecipients(values []string) ([]fury.Recipient, error) {
	recipients := make([]fury.Recipient, 0, len(values))
	for _, v := range values {
		address, amount, ok := strings.Cut(v, ":")
		if !ok || address == "" || amount == "" {
			return nil, fmt.Errorf("invalid recipient %q: expected ADDRESS:AMOUNT", v)
		}
		recipients = append(recipients, fury.Recipient{Address: address, Amount: amount})
	}
	return recipients, nil
}
