package fury

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furylabs/fury-go/pkg/errors"
)

func TestDistribute(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
	svc := &WalletsService{transport: rec}

	_, err := svc.Distribute(context.Background(), &DistributeRequest{
		Sender: "sender1",
		Recipients: []Recipient{
			{Address: "wallet1", Amount: "0.01"},
			{Address: "wallet2", Amount: "0.02"},
		},
	})
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/wallets/distribute", rec.calls[0].path)
	assert.JSONEq(t, `{
		"sender": "sender1",
		"recipients": [
			{"address": "wallet1", "amount": "0.01"},
			{"address": "wallet2", "amount": "0.02"}
		]
	}`, payloadJSON(t, rec.calls[0].body))
}

func TestDistributeValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *DistributeRequest
	}{
		{"nil request", nil},
		{"empty sender", &DistributeRequest{Recipients: []Recipient{{Address: "w", Amount: "1"}}}},
		{"no recipients", &DistributeRequest{Sender: "sender1"}},
		{"recipient without address", &DistributeRequest{
			Sender:     "sender1",
			Recipients: []Recipient{{Amount: "1"}},
		}},
		{"recipient with bad amount", &DistributeRequest{
			Sender:     "sender1",
			Recipients: []Recipient{{Address: "wallet1", Amount: "-1"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingInvoker{}
			svc := &WalletsService{transport: rec}

			_, err := svc.Distribute(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, rec.calls)
		})
	}
}

func TestConsolidate(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":["tx"]}`)}
	svc := &WalletsService{transport: rec}

	_, err := svc.Consolidate(context.Background(), &ConsolidateRequest{
		SourceAddresses: []string{"wallet1", "wallet2"},
		ReceiverAddress: "receiver1",
	})
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "/api/wallets/consolidate", rec.calls[0].path)

	// Percentage defaults to 100; tokenAddress absent means native SOL.
	assert.JSONEq(t, `{
		"sourceAddresses": ["wallet1", "wallet2"],
		"receiverAddress": "receiver1",
		"percentage": 100
	}`, payloadJSON(t, rec.calls[0].body))
}

func TestConsolidateWithToken(t *testing.T) {
	rec := &recordingInvoker{respond: respondJSON(t, `{"transactions":[]}`)}
	svc := &WalletsService{transport: rec}

	_, err := svc.Consolidate(context.Background(), &ConsolidateRequest{
		SourceAddresses: []string{"wallet1"},
		ReceiverAddress: "receiver1",
		Percentage:      50,
		TokenAddress:    "token1",
	})
	require.NoError(t, err)

	payload := payloadJSON(t, rec.calls[0].body)
	assert.Contains(t, payload, `"percentage":50`)
	assert.Contains(t, payload, `"tokenAddress":"token1"`)
}

func TestConsolidateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *ConsolidateRequest
	}{
		{"nil request", nil},
		{"duplicate sources", &ConsolidateRequest{
			SourceAddresses: []string{"wallet1", "wallet1"},
			ReceiverAddress: "receiver1",
		}},
		{"missing receiver", &ConsolidateRequest{
			SourceAddresses: []string{"wallet1"},
		}},
		{"percentage above 100", &ConsolidateRequest{
			SourceAddresses: []string{"wallet1"},
			ReceiverAddress: "receiver1",
			Percentage:      100.0001,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingInvoker{}
			svc := &WalletsService{transport: rec}

			_, err := svc.Consolidate(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, rec.calls)
		})
	}
}
