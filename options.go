package fury

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// Option is a function that configures a Client instance
type Option func(*config) error

// config collects the options applied at construction time.
type config struct {
	apiKey    string
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *zerolog.Logger
}

// defaults returns the baseline configuration.
func defaults() *config {
	return &config{
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: constants.DefaultUserAgent,
	}
}

// httpClient resolves the HTTP client to hand to the transport. A
// caller-supplied client is used as-is except that an explicit timeout
// option overrides its Timeout on a copy.
func (c *config) httpClient() *http.Client {
	if c.client == nil {
		return &http.Client{Timeout: c.timeout}
	}
	if c.timeout != constants.DefaultHTTPTimeout {
		clone := *c.client
		clone.Timeout = c.timeout
		return &clone
	}
	return c.client
}

// WithAPIKey configures the API key sent as a Bearer token on every
// request. An empty key leaves requests unauthenticated.
func WithAPIKey(key string) Option {
	return func(c *config) error {
		c.apiKey = key
		return nil
	}
}

// WithHTTPClient configures a custom *http.Client, e.g. to set proxies
// or transport-level behavior. Timeouts configured here are passed
// through; the SDK adds no timeout orchestration of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		if client == nil {
			return errors.NewValidationError("httpClient", nil, "http client must not be nil")
		}
		c.client = client
		return nil
	}
}

// WithTimeout configures the HTTP client timeout for each round-trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "timeout must be positive")
		}
		c.timeout = timeout
		return nil
	}
}

// WithUserAgent configures the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		if ua == "" {
			return errors.NewValidationError("userAgent", ua, "user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithLogger configures a zerolog logger for request/response debug
// logging. Without it the SDK is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = &logger
		return nil
	}
}
