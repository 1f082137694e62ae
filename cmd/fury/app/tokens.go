package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/furylabs/fury-go"
	"github.com/furylabs/fury-go/pkg/constants"
)

// commandContext bounds a command run with the default CLI timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), constants.CommandTimeout)
}

// NewBuyCommand creates the buy command.
func (a *App) NewBuyCommand() *cobra.Command {
	var (
		wallets     []string
		solAmount   float64
		protocol    string
		slippageBps int64
		jitoTip     int64
		affiliate   string
		affFee      string
	)

	cmd := &cobra.Command{
		Use:     "buy TOKEN_ADDRESS",
		Short:   "Buy a token across one or more wallets",
		GroupID: "tokens",
		Args:    cobra.ExactArgs(1),
		Example: `  fury buy Bq5nFQ82jBYcFKRzUSximpCmCg5t8L8tVMqsn612pump \
    --wallets wallet1,wallet2 --sol 0.5 --protocol pumpfun`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			parsed, err := fury.ParseProtocol(protocol)
			if err != nil {
				return err
			}

			req := &fury.BuyRequest{
				WalletAddresses:  wallets,
				TokenAddress:     args[0],
				SolAmount:        solAmount,
				Protocol:         parsed,
				AffiliateAddress: affiliate,
				AffiliateFee:     affFee,
			}
			if cmd.Flags().Changed("slippage-bps") {
				req.SlippageBps = &slippageBps
			}
			if cmd.Flags().Changed("jito-tip") {
				req.JitoTipLamports = &jitoTip
				a.logger.Debug().Str("tip", formatLamports(jitoTip)).Msg("Using Jito tip")
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Tokens.Buy(ctx, req)
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

	cmd.Flags().StringSliceVarP(&wallets, "wallets", "w", nil, "buyer wallet addresses (required)")
	cmd.Flags().Float64VarP(&solAmount, "sol", "s", 0, "SOL amount to spend per wallet (required)")
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "", "trading protocol: raydium, jupiter, pumpfun, moonshot, pumpswap, auto")
	cmd.Flags().Int64Var(&slippageBps, "slippage-bps", 0, "slippage tolerance in basis points (0-10000)")
	cmd.Flags().Int64Var(&jitoTip, "jito-tip", 0, "Jito tip in lamports")
	cmd.Flags().StringVar(&affiliate, "affiliate", "", "affiliate wallet address")
	cmd.Flags().StringVar(&affFee, "affiliate-fee", "", "affiliate fee percentage, e.g. 2 for 2%")
	_ = cmd.MarkFlagRequired("wallets")
	_ = cmd.MarkFlagRequired("sol")

	return cmd
}

// NewSellCommand creates the sell command.
func (a *App) NewSellCommand() *cobra.Command {
	var (
		wallets    []string
		percentage float64
		protocol   string
	)

	cmd := &cobra.Command{
		Use:     "sell TOKEN_ADDRESS",
		Short:   "Sell a token across one or more wallets",
		GroupID: "tokens",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			parsed, err := fury.ParseProtocol(protocol)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Tokens.Sell(ctx, &fury.SellRequest{
				WalletAddresses: wallets,
				TokenAddress:    args[0],
				Percentage:      percentage,
				Protocol:        parsed,
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

	cmd.Flags().StringSliceVarP(&wallets, "wallets", "w", nil, "seller wallet addresses (required)")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "percentage of holdings to sell (default 100)")
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "", "trading protocol: raydium, jupiter, pumpfun, moonshot, pumpswap, auto")
	_ = cmd.MarkFlagRequired("wallets")

	return cmd
}

// NewTransferCommand creates the transfer command.
func (a *App) NewTransferCommand() *cobra.Command {
	var (
		sender string
		token  string
		amount string
	)

	cmd := &cobra.Command{
		Use:     "transfer RECEIVER_ADDRESS",
		Short:   "Transfer tokens or SOL to another wallet",
		GroupID: "tokens",
		Long: `Transfer builds an unsigned transfer transaction. With --token it
moves SPL tokens; without it, native SOL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Tokens.Transfer(ctx, &fury.TransferRequest{
				SenderPublicKey: sender,
				Receiver:        args[0],
				TokenAddress:    token,
				Amount:          amount,
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

	cmd.Flags().StringVar(&sender, "sender", "", "sender public key (required)")
	cmd.Flags().StringVar(&token, "token", "", "token mint address (empty transfers native SOL)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to transfer as a decimal string (required)")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// NewBurnCommand creates the burn command.
func (a *App) NewBurnCommand() *cobra.Command {
	var (
		wallet string
		amount string
	)

	cmd := &cobra.Command{
		Use:     "burn TOKEN_ADDRESS",
		Short:   "Burn tokens from a wallet",
		GroupID: "tokens",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Tokens.Burn(ctx, &fury.BurnRequest{
				WalletPublicKey: wallet,
				TokenAddress:    args[0],
				Amount:          amount,
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

	cmd.Flags().StringVar(&wallet, "wallet", "", "wallet public key (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "token amount to burn as a decimal string (required)")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// NewCleanerCommand creates the cleaner command.
func (a *App) NewCleanerCommand() *cobra.Command {
	var (
		seller  string
		buyer   string
		sellPct float64
		buyPct  float64
	)

	cmd := &cobra.Command{
		Use:     "cleaner TOKEN_ADDRESS",
		Short:   "Run a paired sell and buy between two wallets",
		GroupID: "tokens",
		Long: `Cleaner sells a percentage of holdings from one wallet and buys with
a percentage of another wallet's SOL in a single server-side operation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Tokens.Cleaner(ctx, &fury.CleanerRequest{
				SellerAddress:  seller,
				BuyerAddress:   buyer,
				TokenAddress:   args[0],
				SellPercentage: sellPct,
				BuyPercentage:  buyPct,
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

	cmd.Flags().StringVar(&seller, "seller", "", "selling wallet address (required)")
	cmd.Flags().StringVar(&buyer, "buyer", "", "buying wallet address (required)")
	cmd.Flags().Float64Var(&sellPct, "sell-pct", 0, "percentage of holdings to sell (required)")
	cmd.Flags().Float64Var(&buyPct, "buy-pct", 0, "percentage of SOL to buy with (required)")
	_ = cmd.MarkFlagRequired("seller")
	_ = cmd.MarkFlagRequired("buyer")
	_ = cmd.MarkFlagRequired("sell-pct")
	_ = cmd.MarkFlagRequired("buy-pct")

	return cmd
}
