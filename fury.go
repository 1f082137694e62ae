// Package fury provides a Go client for the FURY Solana token API.
// It wraps the remote HTTP service behind typed request and response
// records, grouped into resource namespaces (tokens, transactions,
// analytics, utilities, wallets).
//
// Every operation performs exactly one HTTP round-trip: inputs are
// validated locally, the payload is serialized, and the response is
// decoded or surfaced as one of the typed errors in pkg/errors
// (ValidationError, TransportError, APIError, DecodeError). The SDK
// never retries, caches, or signs transactions; signing and submission
// policy belong to the caller and the server.
//
// Example usage:
//
//	client, err := fury.New("https://solana.fury.bot",
//	    fury.WithAPIKey(os.Getenv("FURY_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Check API health
//	health, err := client.HealthCheck(ctx)
//
//	// Generate a mint keypair server-side
//	mint, err := client.Utilities.GenerateMint(ctx)
//
//	// Buy tokens
//	result, err := client.Tokens.Buy(ctx, &fury.BuyRequest{
//	    WalletAddresses: []string{"FuRytmqsoo4mKQAhNXoB64JD4SsiVqxYkUKC6i1VaBot"},
//	    TokenAddress:    "Bq5nFQ82jBYcFKRzUSximpCmCg5t8L8tVMqsn612pump",
//	    SolAmount:       1.5,
//	    Protocol:        fury.ProtocolPumpfun,
//	})
package fury

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/furylabs/fury-go/internal/transport"
	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// invoker is the minimal transport surface the namespace services need.
// *transport.Client satisfies it; tests substitute a recording fake.
type invoker interface {
	Execute(ctx context.Context, method, path string, query url.Values, body, out any) error
}

// Compile-time check that the real transport satisfies the service surface.
var _ invoker = (*transport.Client)(nil)

// Client is the entry point for all FURY API operations. It holds an
// immutable session (base URL, optional API key) shared read-only by all
// namespaces, so concurrent use from multiple goroutines is safe.
type Client struct {
	// Tokens exposes buy, sell, transfer, create, burn and cleaner operations.
	Tokens *TokensService

	// Transactions exposes signed-transaction submission.
	Transactions *TransactionsService

	// Analytics exposes server-side PnL calculation.
	Analytics *AnalyticsService

	// Utilities exposes helper operations such as mint generation.
	Utilities *UtilitiesService

	// Wallets exposes distribution and consolidation operations.
	Wallets *WalletsService

	transport invoker
	baseURL   string
}

// New creates a Client for the given base URL. Construction validates
// configuration but performs no I/O.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.NewValidationError("baseURL", baseURL, "base URL is required")
	}

	cfg := defaults()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	t := transport.New(baseURL, transport.Config{
		APIKey:     cfg.apiKey,
		HTTPClient: cfg.httpClient(),
		UserAgent:  cfg.userAgent,
		Logger:     cfg.logger,
	})

	c := &Client{
		transport: t,
		baseURL:   t.BaseURL(),
	}
	c.Tokens = &TokensService{transport: t}
	c.Transactions = &TransactionsService{transport: t}
	c.Analytics = &AnalyticsService{transport: t}
	c.Utilities = &UtilitiesService{transport: t}
	c.Wallets = &WalletsService{transport: t}

	return c, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck performs a GET against the health endpoint and returns the
// parsed status payload.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.transport.Execute(ctx, http.MethodGet, constants.EndpointHealth, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
