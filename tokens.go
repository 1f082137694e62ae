package fury

import (
	"context"
	"fmt"
	"net/http"

	"github.com/furylabs/fury-go/internal/validate"
	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// TokensService exposes the token trading and lifecycle operations.
type TokensService struct {
	transport invoker
}

// Buy buys tokens with SOL through the requested protocol. The server
// returns partially signed transactions for the caller to sign and
// submit via Transactions.Send.
func (s *TokensService) Buy(ctx context.Context, req *BuyRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.AddressList("walletAddresses", req.WalletAddresses); err != nil {
		return nil, err
	}
	if err := validate.Address("tokenAddress", req.TokenAddress); err != nil {
		return nil, err
	}
	if err := validate.SolAmount("solAmount", req.SolAmount); err != nil {
		return nil, err
	}
	protocol, err := ParseProtocol(string(req.Protocol))
	if err != nil {
		return nil, err
	}
	if err := validateTradeOptions(req.AffiliateFee, req.JitoTipLamports, req.SlippageBps); err != nil {
		return nil, err
	}

	payload := *req
	payload.Protocol = protocol

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensBuy, nil, &payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sell sells a percentage of each wallet's token balance. Percentage
// defaults to 100 when zero.
func (s *TokensService) Sell(ctx context.Context, req *SellRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.AddressList("walletAddresses", req.WalletAddresses); err != nil {
		return nil, err
	}
	if err := validate.Address("tokenAddress", req.TokenAddress); err != nil {
		return nil, err
	}
	percentage := req.Percentage
	if percentage == 0 {
		percentage = constants.DefaultPercentage
	}
	if err := validate.Percentage("percentage", percentage); err != nil {
		return nil, err
	}
	protocol, err := ParseProtocol(string(req.Protocol))
	if err != nil {
		return nil, err
	}
	if err := validateTradeOptions(req.AffiliateFee, req.JitoTipLamports, req.SlippageBps); err != nil {
		return nil, err
	}

	payload := *req
	payload.Percentage = percentage
	payload.Protocol = protocol

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensSell, nil, &payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transfer moves tokens between two wallets. An empty TokenAddress
// transfers native SOL.
func (s *TokensService) Transfer(ctx context.Context, req *TransferRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.Address("senderPublicKey", req.SenderPublicKey); err != nil {
		return nil, err
	}
	if err := validate.Address("receiver", req.Receiver); err != nil {
		return nil, err
	}
	if err := validate.Amount("amount", req.Amount); err != nil {
		return nil, err
	}

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensTransfer, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create mints a new token and distributes the initial supply across the
// given wallets. Amounts must pair one-to-one with WalletAddresses; a
// zero DefaultSolAmount in the config falls back to the server default.
func (s *TokensService) Create(ctx context.Context, req *CreateRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.AddressList("walletAddresses", req.WalletAddresses); err != nil {
		return nil, err
	}
	if err := validate.Address("mintPubkey", req.MintPubkey); err != nil {
		return nil, err
	}
	if err := validate.MatchingLengths("amounts", "walletAddresses", len(req.Amounts), len(req.WalletAddresses)); err != nil {
		return nil, err
	}
	for i, amount := range req.Amounts {
		if amount <= 0 {
			return nil, errors.NewValidationError("amounts", amount,
				fmt.Sprintf("SOL amount at index %d must be positive", i))
		}
	}

	cfg := req.Config
	if cfg.DefaultSolAmount == 0 {
		cfg.DefaultSolAmount = constants.DefaultCreateSolAmount
	}

	payload := createPayload{
		WalletAddresses: req.WalletAddresses,
		MintPubkey:      req.MintPubkey,
		Config:          tokenCreationEnvelope{TokenCreation: cfg},
		Amounts:         req.Amounts,
	}

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensCreate, nil, &payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Burn destroys an amount of tokens held by a wallet.
func (s *TokensService) Burn(ctx context.Context, req *BurnRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.Address("walletPublicKey", req.WalletPublicKey); err != nil {
		return nil, err
	}
	if err := validate.Address("tokenAddress", req.TokenAddress); err != nil {
		return nil, err
	}
	if err := validate.Amount("amount", req.Amount); err != nil {
		return nil, err
	}

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensBurn, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cleaner executes a paired sell and buy in one server-side call: the
// seller wallet sells a percentage of its tokens and the buyer wallet
// spends a percentage of its SOL buying them back.
func (s *TokensService) Cleaner(ctx context.Context, req *CleanerRequest) (*TransactionResponse, error) {
	if req == nil {
		return nil, errors.NewValidationError("request", nil, "request must not be nil")
	}
	if err := validate.Address("sellerAddress", req.SellerAddress); err != nil {
		return nil, err
	}
	if err := validate.Address("buyerAddress", req.BuyerAddress); err != nil {
		return nil, err
	}
	if err := validate.Address("tokenAddress", req.TokenAddress); err != nil {
		return nil, err
	}
	if err := validate.Percentage("sellPercentage", req.SellPercentage); err != nil {
		return nil, err
	}
	if err := validate.Percentage("buyPercentage", req.BuyPercentage); err != nil {
		return nil, err
	}

	var out TransactionResponse
	if err := s.transport.Execute(ctx, http.MethodPost, constants.EndpointTokensCleaner, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// validateTradeOptions checks the optional fields shared by buy and sell.
func validateTradeOptions(affiliateFee string, jitoTipLamports, slippageBps *int64) error {
	if affiliateFee != "" {
		if err := validate.PercentageString("affiliateFee", affiliateFee); err != nil {
			return err
		}
	}
	if jitoTipLamports != nil && *jitoTipLamports < 0 {
		return errors.NewValidationError("jitoTipLamports", *jitoTipLamports, "tip must not be negative")
	}
	if slippageBps != nil {
		if err := validate.SlippageBps("slippageBps", *slippageBps); err != nil {
			return err
		}
	}
	return nil
}
