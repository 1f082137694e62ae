package fury

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furylabs/fury-go/pkg/errors"
)

func TestBuyIssuesOneRequest(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx1"]}`)}
	svc := &TokensService{transport: rec}

	result, err := svc.Buy(context.Background(), &BuyRequest{
		WalletAddresses: []string{"FuRytmqsoo4mKQAhNXoB64JD4SsiVqxYkUKC6i1VaBot"},
		TokenAddress:    "Bq5nFQ82jBYcFKRzUSximpCmCg5t8L8tVMqsn612pump",
		SolAmount:       1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tx1"}, result.Transactions)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "POST", rec.calls[0].method)
	assert.Equal(t, "/api/tokens/buy", rec.calls[0].path)
}

func TestBuyDefaultsProtocolToAuto(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
	svc := &TokensService{transport: rec}

	_, err := svc.Buy(context.Background(), &BuyRequest{
		WalletAddresses: []string{"wallet1"},
		TokenAddress:    "token1",
		SolAmount:       0.5,
	})
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.JSONEq(t, `{
		"walletAddresses": ["wallet1"],
		"tokenAddress": "token1",
		"solAmount": 0.5,
		"protocol": "auto"
	}`, payloadJSON(t, rec.calls[0].body))
}

func TestBuyOptionalFieldsOmittedWhenUnset(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
	svc := &TokensService{transport: rec}

	slippage := int64(9990)
	tip := int64(5000000)
	_, err := svc.Buy(context.Background(), &BuyRequest{
		WalletAddresses: []string{"wallet1"},
		TokenAddress:    "token1",
		SolAmount:       0.5,
		Protocol:        ProtocolPumpfun,
		SlippageBps:     &slippage,
		JitoTipLamports: &tip,
	})
	require.NoError(t, err)

	payload := payloadJSON(t, rec.calls[0].body)
	assert.Contains(t, payload, `"slippageBps":9990`)
	assert.Contains(t, payload, `"jitoTipLamports":5000000`)
	assert.NotContains(t, payload, "affiliateAddress")
	assert.NotContains(t, payload, "affiliateFee")
}

func TestBuyValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *BuyRequest
	}{
		{"nil request", nil},
		{"empty wallets", &BuyRequest{TokenAddress: "token1", SolAmount: 1}},
		{"duplicate wallets", &BuyRequest{
			WalletAddresses: []string{"wallet1", "wallet1"},
			TokenAddress:    "token1",
			SolAmount:       1,
		}},
		{"empty token address", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			SolAmount:       1,
		}},
		{"zero sol amount", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
		}},
		{"unknown protocol", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
			SolAmount:       1,
			Protocol:        "uniswap",
		}},
		{"excessive slippage", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
			SolAmount:       1,
			SlippageBps:     int64Ptr(10001),
		}},
		{"negative tip", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
			SolAmount:       1,
			JitoTipLamports: int64Ptr(-1),
		}},
		{"bad affiliate fee", &BuyRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
			SolAmount:       1,
			AffiliateFee:    "101",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingInvoker{}
			svc := &TokensService{transport: rec}

			_, err := svc.Buy(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "expected validation error, got %v", err)
			assert.Empty(t, rec.calls, "no request may be issued for invalid input")
		})
	}
}

func TestBuyPropagatesAPIError(t *testing.T) {
	apiErr := errors.NewAPIError(400, "/api/tokens/buy", "slippage too high",
		map[string]any{"error": "slippage too high"})
	rec := &recordingInvoker{err: apiErr}
	svc := &TokensService{transport: rec}

	_, err := svc.Buy(context.Background(), &BuyRequest{
		WalletAddresses: []string{"wallet1"},
		TokenAddress:    "token1",
		SolAmount:       1,
	})
	require.Error(t, err)

	got, ok := errors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 400, got.StatusCode)
	assert.Equal(t, map[string]any{"error": "slippage too high"}, got.ErrorData)
}

func TestSellDefaultsPercentage(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
	svc := &TokensService{transport: rec}

	_, err := svc.Sell(context.Background(), &SellRequest{
		WalletAddresses: []string{"wallet1"},
		TokenAddress:    "token1",
	})
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/tokens/sell", rec.calls[0].path)
	assert.JSONEq(t, `{
		"walletAddresses": ["wallet1"],
		"tokenAddress": "token1",
		"percentage": 100,
		"protocol": "auto"
	}`, payloadJSON(t, rec.calls[0].body))
}

func TestSellRejectsOutOfRangePercentage(t *testing.T) {
	for _, p := range []float64{-5, 100.0001, 150} {
		rec := &recordingInvoker{}
		svc := &TokensService{transport: rec}

		_, err := svc.Sell(context.Background(), &SellRequest{
			WalletAddresses: []string{"wallet1"},
			TokenAddress:    "token1",
			Percentage:      p,
		})
		require.Error(t, err, "percentage %v must be rejected", p)
		assert.Empty(t, rec.calls)
	}
}

func TestTransfer(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
	svc := &TokensService{transport: rec}

	_, err := svc.Transfer(context.Background(), &TransferRequest{
		SenderPublicKey: "sender1",
		Receiver:        "receiver1",
		TokenAddress:    "token1",
		Amount:          "1000",
	})
	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/tokens/transfer", rec.calls[0].path)

	t.Run("native SOL leaves token address empty", func(t *testing.T) {
		rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
		svc := &TokensService{transport: rec}

		_, err := svc.Transfer(context.Background(), &TransferRequest{
			SenderPublicKey: "sender1",
			Receiver:        "receiver1",
			Amount:          "0.5",
		})
		require.NoError(t, err)
		assert.Contains(t, payloadJSON(t, rec.calls[0].body), `"tokenAddress":""`)
	})

	t.Run("rejects bad amount", func(t *testing.T) {
		rec := &recordingInvoker{}
		svc := &TokensService{transport: rec}

		_, err := svc.Transfer(context.Background(), &TransferRequest{
			SenderPublicKey: "sender1",
			Receiver:        "receiver1",
			Amount:          "zero",
		})
		require.Error(t, err)
		assert.Empty(t, rec.calls)
	})
}

func TestCreate(t *testing.T) {
	t.Run("mismatched amounts length fails without request", func(t *testing.T) {
		rec := &recordingInvoker{}
		svc := &TokensService{transport: rec}

		_, err := svc.Create(context.Background(), &CreateRequest{
			WalletAddresses: []string{"wallet1", "wallet2"},
			MintPubkey:      "mint1",
			Amounts:         []float64{0.1},
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Empty(t, rec.calls)
	})

	t.Run("nests config under tokenCreation", func(t *testing.T) {
		rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
		svc := &TokensService{transport: rec}

		_, err := svc.Create(context.Background(), &CreateRequest{
			WalletAddresses: []string{"wallet1"},
			MintPubkey:      "mint1",
			Config: TokenCreationConfig{
				Metadata: TokenMetadata{
					Name:        "Test Token",
					Symbol:      "TEST",
					Description: "a test token",
					File:        "https://example.com/logo.png",
				},
				DefaultSolAmount: 0.25,
			},
			Amounts: []float64{0.1},
		})
		require.NoError(t, err)

		require.Len(t, rec.calls, 1)
		assert.Equal(t, "/api/tokens/create", rec.calls[0].path)
		assert.JSONEq(t, `{
			"walletAddresses": ["wallet1"],
			"mintPubkey": "mint1",
			"config": {
				"tokenCreation": {
					"metadata": {
						"name": "Test Token",
						"symbol": "TEST",
						"description": "a test token",
						"file": "https://example.com/logo.png",
						"telegram": "",
						"twitter": "",
						"website": ""
					},
					"defaultSolAmount": 0.25
				}
			},
			"amounts": [0.1]
		}`, payloadJSON(t, rec.calls[0].body))
	})

	t.Run("zero default sol amount falls back", func(t *testing.T) {
		rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
		svc := &TokensService{transport: rec}

		_, err := svc.Create(context.Background(), &CreateRequest{
			WalletAddresses: []string{"wallet1"},
			MintPubkey:      "mint1",
			Amounts:         []float64{0.1},
		})
		require.NoError(t, err)
		assert.Contains(t, payloadJSON(t, rec.calls[0].body), `"defaultSolAmount":0.1`)
	})
}

func TestBurn(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
	svc := &TokensService{transport: rec}

	_, err := svc.Burn(context.Background(), &BurnRequest{
		WalletPublicKey: "wallet1",
		TokenAddress:    "token1",
		Amount:          "500",
	})
	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/tokens/burn", rec.calls[0].path)

	t.Run("requires token address", func(t *testing.T) {
		rec := &recordingInvoker{}
		svc := &TokensService{transport: rec}

		_, err := svc.Burn(context.Background(), &BurnRequest{
			WalletPublicKey: "wallet1",
			Amount:          "500",
		})
		require.Error(t, err)
		assert.Empty(t, rec.calls)
	})
}

func TestCleaner(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
	svc := &TokensService{transport: rec}

	_, err := svc.Cleaner(context.Background(), &CleanerRequest{
		SellerAddress:  "seller1",
		BuyerAddress:   "buyer1",
		TokenAddress:   "token1",
		SellPercentage: 50.5,
		BuyPercentage:  75,
	})
	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/tokens/cleaner", rec.calls[0].path)

	t.Run("rejects zero percentages", func(t *testing.T) {
		rec := &recordingInvoker{}
		svc := &TokensService{transport: rec}

		_, err := svc.Cleaner(context.Background(), &CleanerRequest{
			SellerAddress:  "seller1",
			BuyerAddress:   "buyer1",
			TokenAddress:   "token1",
			SellPercentage: 0,
			BuyPercentage:  50,
		})
		require.Error(t, err)
		assert.Empty(t, rec.calls)
	})
}

func int64Ptr(v int64) *int64 { return &v }
