package fury_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furylabs/fury-go"
)

func TestRecipientWireShape(t *testing.T) {
	data, err := json.Marshal(fury.Recipient{Address: "addr", Amount: "0.01"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"address": "addr", "amount": "0.01"}`, string(data))

	var back fury.Recipient
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "addr", back.Address)
	assert.Equal(t, "0.01", back.Amount)
}

func TestTokenMetadataSocialsSerializeEmpty(t *testing.T) {
	data, err := json.Marshal(fury.TokenMetadata{
		Name:        "Test Token",
		Symbol:      "TEST",
		Description: "A test token",
		File:        "https://example.com/logo.png",
	})
	require.NoError(t, err)

	// Unset socials go out as empty strings, not omitted.
	assert.JSONEq(t, `{
		"name": "Test Token",
		"symbol": "TEST",
		"description": "A test token",
		"file": "https://example.com/logo.png",
		"telegram": "",
		"twitter": "",
		"website": ""
	}`, string(data))
}

func TestSignedTransactionOmitsNilOptions(t *testing.T) {
	data, err := json.Marshal(fury.SignedTransaction{Transaction: "base58data"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"transaction": "base58data"}`, string(data))
}
