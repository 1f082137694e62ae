package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	successGlyph = color.New(color.FgGreen).SprintFunc()
	errorGlyph   = color.New(color.FgRed).SprintFunc()
	headerStyle  = color.New(color.Bold).SprintFunc()

	// numPrinter groups digits for lamport and signature counts.
	numPrinter = message.NewPrinter(language.English)
)

// printSuccess writes a green check line to stdout.
func (a *App) printSuccess(format string, args ...any) {
	if a.config.NoColor {
		color.NoColor = true
	}
	fmt.Printf("%s %s\n", successGlyph("✓"), fmt.Sprintf(format, args...))
}

// printError writes a red cross line to stdout.
func (a *App) printError(format string, args ...any) {
	if a.config.NoColor {
		color.NoColor = true
	}
	fmt.Printf("%s %s\n", errorGlyph("✗"), fmt.Sprintf(format, args...))
}

// printHeader writes a bold section line to stdout.
func (a *App) printHeader(format string, args ...any) {
	if a.config.NoColor {
		color.NoColor = true
	}
	fmt.Println(headerStyle(fmt.Sprintf(format, args...)))
}

// printJSON pretty-prints a value as JSON to stdout.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTransactions reports a batch of serialized transactions.
func (a *App) printTransactions(transactions []string) {
	a.printSuccess("%s unsigned transaction(s) ready for signing",
		numPrinter.Sprintf("%d", len(transactions)))
	for i, tx := range transactions {
		fmt.Printf("  [%d] %s\n", i, tx)
	}
}

// formatLamports renders a lamport amount with digit grouping.
func formatLamports(lamports int64) string {
	return numPrinter.Sprintf("%d lamports", lamports)
}
