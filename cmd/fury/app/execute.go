package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the fury CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fury",
		Short:   "Solana token operations via the FURY API",
		Version: a.version,
		Long: `Fury is a command-line client for the FURY Solana token API.

It builds unsigned transactions for buying, selling, transferring,
creating and burning tokens across multiple wallets, submits signed
transactions, and computes wallet PnL server-side.

Configure the endpoint and credentials with FURY_API_URL and
FURY_API_KEY, a .env file, or ~/.fury.yaml.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "tokens",
		Title: "Token Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "wallets",
		Title: "Wallet Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.fury.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "FURY API base URL (overrides FURY_API_URL)")
	rootCmd.PersistentFlags().String("api-key", "", "FURY API key (overrides FURY_API_KEY)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON responses")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("fury {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	jsonOut := mustGetBool(cmd, "json")
	baseURL := mustGetString(cmd, "base-url")
	apiKey := mustGetString(cmd, "api-key")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, jsonOut, baseURL, apiKey, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Token commands
	rootCmd.AddCommand(a.NewBuyCommand())
	rootCmd.AddCommand(a.NewSellCommand())
	rootCmd.AddCommand(a.NewTransferCommand())
	rootCmd.AddCommand(a.NewCreateCommand())
	rootCmd.AddCommand(a.NewBurnCommand())
	rootCmd.AddCommand(a.NewCleanerCommand())

	// Wallet commands
	rootCmd.AddCommand(a.NewDistributeCommand())
	rootCmd.AddCommand(a.NewConsolidateCommand())

	// Other commands
	rootCmd.AddCommand(a.NewSendCommand())
	rootCmd.AddCommand(a.NewPnLCommand())
	rootCmd.AddCommand(a.NewGenerateMintCommand())
	rootCmd.AddCommand(a.NewHealthCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError prints an error to stderr and exits with status 1. Meant
// for top-level error handling in main.go.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
