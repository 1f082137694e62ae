package fury

import (
	"context"
	"net/http"

	"github.com/furylabs/fury-go/pkg/constants"
)

// UtilitiesService exposes helper operations.
type UtilitiesService struct {
	transport invoker
}

// GenerateMint asks the server for a freshly generated mint keypair to
// use in a subsequent Tokens.Create call.
func (s *UtilitiesService) GenerateMint(ctx context.Context) (*GenerateMintResponse, error) {
	var out GenerateMintResponse
	if err := s.transport.Execute(ctx, http.MethodGet, constants.EndpointGenerateMint, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
