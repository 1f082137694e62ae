package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/furylabs/fury-go"
)

// NewSendCommand creates the send command.
func (a *App) NewSendCommand() *cobra.Command {
	var (
		file          string
		useRPC        bool
		skipPreflight bool
		commitment    string
	)

	cmd := &cobra.Command{
		Use:   "send [TRANSACTION...]",
		Short: "Submit signed transactions",
		Long: `Send submits base58-encoded signed transactions, given as arguments
or one per line in a file via --file. By default the batch goes through
the bundle service; --use-rpc submits each transaction directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}

			encoded := args
			if file != "" {
				fromFile, err := readTransactionLines(file)
				if err != nil {
					return err
				}
				encoded = append(encoded, fromFile...)
			}

			var options *fury.TxOptions
			if skipPreflight || commitment != "" {
				options = &fury.TxOptions{
					SkipPreflight:       skipPreflight,
					PreflightCommitment: commitment,
				}
			}

			transactions := make([]fury.SignedTransaction, 0, len(encoded))
			for _, tx := range encoded {
				transactions = append(transactions, fury.SignedTransaction{
					Transaction: tx,
					Options:     options,
				})
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			resp, err := client.Transactions.Send(ctx, &fury.SendRequest{
				Transactions: transactions,
				UseRPC:       useRPC,
			})
			if err != nil {
				return err
			}
			if a.config.JSON {
				return a.printJSON(resp)
			}
			a.printSuccess("%s transaction(s) submitted", numPrinter.Sprintf("%d", len(resp.Results)))
			for _, sig := range resp.Results {
				fmt.Printf("  %s\n", sig)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one base58 transaction per line")
	cmd.Flags().BoolVar(&useRPC, "use-rpc", false, "submit directly over RPC instead of the bundle service")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "skip preflight simulation")
	cmd.Flags().StringVar(&commitment, "commitment", "", "preflight commitment level, e.g. confirmed")

	return cmd
}

// readTransactionLines reads non-empty lines from a transaction file.
func readTransactionLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return lines, nil
}
