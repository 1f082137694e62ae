package fury

import (
	"context"
	"net/http"
	"strings"

	"github.com/furylabs/fury-go/internal/validate"
	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// AnalyticsService exposes server-side trading analytics.
type AnalyticsService struct {
	transport invoker
}

// PnL calculates profit and loss for the given wallets, optionally
// scoped to a single token. Addresses is comma-separated, matching the
// API contract; the report shape is defined by the server.
func (s *AnalyticsService) PnL(ctx context.Context, req *PnLRequest) (PnLResult, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	addresses := splitAddresses(req.Addresses)
	if err := validate.AddressList("addresses", addresses); err != nil {
		return nil, err
	}
	if req.TokenAddress != "" {
		if err := validate.Address("tokenAddress", req.TokenAddress); err != nil {
			return nil, err
		}
	}

	payload := pnlPayload{
		Addresses:    strings.Join(addresses, ","),
		TokenAddress: req.TokenAddress,
	}
	if req.IncludeTimestamp {
		payload.Options = &pnlOptions{IncludeTimestamp: true}
	}

	var out PnLResult
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointAnalyticsPnL, nil, &payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// splitAddresses splits a comma-separated address list, trimming
// whitespace and dropping empty segments from trailing commas.
func splitAddresses(addresses string) []string {
	parts := strings.Split(addresses, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
