// Package constants provides shared constants used throughout the fury SDK.
// This includes timeouts, protocol limits, defaults, and header names that
// should be consistent across the library and the CLI.
package constants

import "time"

// Timeout constants define various timeout durations used by the SDK
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the FURY API
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute
)

// DefaultBaseURL is the production FURY API endpoint, used by the CLI
// when no base URL is configured.
const DefaultBaseURL = "https://solana.fury.bot"

// Trading limits and defaults
const (
	// MaxSlippageBps is the maximum accepted slippage tolerance in basis
	// points (10000 bps = 100%)
	MaxSlippageBps = 10000

	// MaxPercentage is the upper bound for percentage-typed parameters
	MaxPercentage = 100

	// DefaultPercentage is used for sell and consolidate operations when
	// the caller does not specify one
	DefaultPercentage = 100

	// DefaultCreateSolAmount is the default SOL amount per wallet when
	// creating a token
	DefaultCreateSolAmount = 0.1

	// LamportsPerSol is the number of lamports in one SOL
	LamportsPerSol = 1_000_000_000
)

// HTTP header names and values
const (
	// AuthorizationHeader carries the Bearer API key when configured
	AuthorizationHeader = "Authorization"

	// ContentTypeJSON is the content type for all request and response bodies
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies the SDK to the FURY API
	DefaultUserAgent = "fury-go/1.0"
)

// API endpoint paths. These are the wire contract of the FURY API and
// must not be altered.
const (
	EndpointHealth          = "/health"
	EndpointTokensBuy       = "/api/tokens/buy"
	EndpointTokensSell      = "/api/tokens/sell"
	EndpointTokensTransfer  = "/api/tokens/transfer"
	EndpointTokensCreate    = "/api/tokens/create"
	EndpointTokensBurn      = "/api/tokens/burn"
	EndpointTokensCleaner   = "/api/tokens/cleaner"
	EndpointTxSend          = "/api/transactions/send"
	EndpointAnalyticsPnL    = "/api/analytics/pnl"
	EndpointGenerateMint    = "/api/utilities/generate-mint"
	EndpointWalletsDistrib  = "/api/wallets/distribute"
	EndpointWalletsConsolid = "/api/wallets/consolidate"
)
