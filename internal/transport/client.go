// Package transport implements the single HTTP round-trip behind every
// SDK operation: build the request, attach authentication, issue exactly
// one attempt, and map the outcome onto the SDK error taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
	"github.com/furylabs/fury-go/pkg/logging"
)

// Config carries the optional knobs for a transport client. The zero
// value is usable: no API key, default http.Client, default user agent.
type Config struct {
	APIKey     string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zerolog.Logger
}

// Client issues JSON requests against a fixed base URL. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	apiKey    string
	auth      Authenticator
	userAgent string
	log       zerolog.Logger
}

// New creates a transport client for the given base URL. A trailing
// slash on the base URL is trimmed so path joining stays predictable.
func New(baseURL string, cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	var auth Authenticator = &NoAuth{}
	if cfg.APIKey != "" {
		auth = &BearerAuth{}
	}

	log := logging.Nop
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.APIKey,
		auth:      auth,
		userAgent: userAgent,
		log:       log,
	}
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs a single request against the API and decodes the JSON
// response into out. A nil out discards the response body. Failures map
// onto the taxonomy in pkg/errors:
//
//   - request could not reach the server: *errors.TransportError
//   - non-2xx status: *errors.APIError with the decoded error body
//   - 2xx body that does not decode: *errors.DecodeError
//
// Exactly one attempt is made per call; retries are a caller concern.
func (c *Client) Execute(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.WrapTransport(method, reqURL, err)
	}

	req.Header.Set("Accept", constants.ContentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", constants.ContentTypeJSON)
	}
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	c.log.Debug().Str("method", method).Str("url", reqURL).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapTransport(method, reqURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapTransport(method, reqURL, err)
	}

	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(data)).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, path, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapDecode(path, err)
	}
	return nil
}

// apiError builds an APIError from a non-success response, extracting the
// structured error body when the server returned one.
func apiError(status int, path string, body []byte) error {
	var errorData map[string]any
	if len(body) > 0 {
		// Best effort: a non-JSON error body still produces a usable error.
		if err := json.Unmarshal(body, &errorData); err != nil {
			errorData = nil
		}
	}

	message := http.StatusText(status)
	if errorData != nil {
		if msg, ok := errorData["message"].(string); ok && msg != "" {
			message = msg
		} else if msg, ok := errorData["error"].(string); ok && msg != "" {
			message = msg
		}
	} else if len(body) > 0 {
		message = string(body)
	}

	return errors.NewAPIError(status, path, message, errorData)
}
