package fury

import (
	"context"
	"fmt"
	"net/http"

	"github.com/furylabs/fury-go/internal/validate"
	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// WalletsService exposes multi-wallet funding operations.
type WalletsService struct {
	transport invoker
}

// Distribute sends amounts from one sender wallet to many recipients.
func (s *WalletsService) Distribute(ctx context.Context, req *DistributeRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.Address("sender", req.Sender); err != nil {
		return nil, err
	}
	if len(req.Recipients) == 0 {
		return nil, errors.NewValidationError("recipients", req.Recipients,
			"at least one recipient is required")
	}
	for i, r := range req.Recipients {
		if err := validate.Address(fmt.Sprintf("recipients[%d].address", i), r.Address); err != nil {
			return nil, err
		}
		if err := validate.Amount(fmt.Sprintf("recipients[%d].amount", i), r.Amount); err != nil {
			return nil, err
		}
	}

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointWalletsDistrib, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Consolidate moves balances from many source wallets into one receiver.
// Percentage defaults to 100 when zero; an empty TokenAddress
// consolidates native SOL.
func (s *WalletsService) Consolidate(ctx context.Context, req *ConsolidateRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.AddressList("sourceAddresses", req.SourceAddresses); err != nil {
		return nil, err
	}
	if err := validate.Address("receiverAddress", req.ReceiverAddress); err != nil {
		return nil, err
	}
	percentage := req.Percentage
	if percentage == 0 {
		percentage = constants.DefaultPercentage
	}
	if err := validate.Percentage("percentage", percentage); err != nil {
		return nil, err
	}

	payload := *req
	payload.Percentage = percentage

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointWalletsConsolid, nil, &payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
