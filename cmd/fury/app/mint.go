package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGenerateMintCommand creates the generate-mint command.
func (a *App) NewGenerateMintCommand() *cobra.Command {
	var showSecret bool

	cmd := &cobra.Command{
		Use:   "generate-mint",
		Short: "Generate a mint keypair server-side",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			mint, err := client.Utilities.GenerateMint(ctx)
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(mint)
			}

			a.printSuccess("mint %s", mint.Pubkey)
			if showSecret && mint.SecretKey != "" {
				fmt.Printf("  secret: %s\n", mint.SecretKey)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "print the secret key when the server returns one")

	return cmd
}
