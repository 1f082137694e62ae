package fury

import (
	"context"
	"fmt"
	"net/http"

	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// TransactionsService exposes signed-transaction submission.
type TransactionsService struct {
	transport invoker
}

// Send submits a batch of signed transactions. With UseRPC false the
// server routes the batch through its bundle service; with UseRPC true
// each transaction is submitted directly over RPC.
func (s *TransactionsService) Send(ctx context.Context, req *SendRequest) (*SendResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if len(req.Transactions) == 0 {
		return nil, errors.NewValidationError("transactions", req.Transactions,
			"at least one signed transaction is required")
	}
	for i, tx := range req.Transactions {
		if tx.Transaction == "" {
			return nil, errors.NewValidationError("transactions", nil,
				fmt.Sprintf("transaction at index %d is empty", i))
		}
	}

	var out SendResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTxSend, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
