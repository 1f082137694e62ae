package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/furylabs/fury-go"
)

// tokenConfigFile is the YAML shape of a token creation config file.
type tokenConfigFile struct {
	Metadata struct {
		Name        string `yaml:"name"`
		Symbol      string `yaml:"symbol"`
		Description string `yaml:"description"`
		File        string `yaml:"file"`
		Telegram    string `yaml:"telegram"`
		Twitter     string `yaml:"twitter"`
		Website     string `yaml:"website"`
	} `yaml:"metadata"`
	DefaultSolAmount float64 `yaml:"defaultSolAmount"`
}

// NewCreateCommand creates the create command.
func (a *App) NewCreateCommand() *cobra.Command {
	var (
		configPath string
		wallets    []string
		amounts    []float64
		mint       string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a new token",
		GroupID: "tokens",
		Long: `Create builds unsigned token creation transactions from a YAML token
config. When --mint is omitted a fresh mint keypair is generated
server-side first.

Config file format:

  metadata:
    name: My Token
    symbol: MTK
    description: A token
    file: https://example.com/logo.png
    telegram: ""
    twitter: ""
    website: ""
  defaultSolAmount: 0.1`,
		Example: `  fury create --config token.yaml --wallets wallet1,wallet2 --amounts 0.5,0.25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("read token config: %w", err)
			}
			var file tokenConfigFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse token config: %w", err)
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			if mint == "" {
				generated, err := client.Utilities.GenerateMint(ctx)
				if err != nil {
					return err
				}
				mint = generated.Pubkey
				a.printSuccess("generated mint %s", mint)
			}

			resp, err := client.Tokens.Create(ctx, &fury.CreateRequest{
				WalletAddresses: wallets,
				MintPubkey:      mint,
				Config: fury.TokenCreationConfig{
					Metadata: fury.TokenMetadata{
						Name:        file.Metadata.Name,
						Symbol:      file.Metadata.Symbol,
						Description: file.Metadata.Description,
						File:        file.Metadata.File,
						Telegram:    file.Metadata.Telegram,
						Twitter:     file.Metadata.Twitter,
						Website:     file.Metadata.Website,
					},
					DefaultSolAmount: file.DefaultSolAmount,
				},
				Amounts: amounts,
			})
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(resp)
			}
			a.printHeader("Token %s (%s)", file.Metadata.Name, mint)
			a.printTransactions(resp.Transactions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config-file", "f", "", "YAML token config file (required)")
	cmd.Flags().StringSliceVarP(&wallets, "wallets", "w", nil, "creator wallet addresses (required)")
	cmd.Flags().Float64SliceVar(&amounts, "amounts", nil, "SOL amount per wallet, matching --wallets order (required)")
	cmd.Flags().StringVar(&mint, "mint", "", "mint public key (generated server-side when omitted)")
	_ = cmd.MarkFlagRequired("config-file")
	_ = cmd.MarkFlagRequired("wallets")
	_ = cmd.MarkFlagRequired("amounts")

	return cmd
}
