package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furylabs/fury-go"
)

func TestParseRecipients(t *testing.T) {
	recipients, err := parseRecipients([]string{"wallet1:0.5", "wallet2:0.25"})
	require.NoError(t, err)
	assert.Equal(t, []fury.Recipient{
		{Address: "wallet1", Amount: "0.5"},
		{Address: "wallet2", Amount: "0.25"},
	}, recipients)
}

func TestParseRecipientsRejectsMalformed(t *testing.T) {
	for _, input := range []string{"wallet1", "wallet1:", ":0.5"} {
		_, err := parseRecipients([]string{input})
		assert.Error(t, err, "input %q", input)
	}
}
