package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	a, err := New("1.0.0", "abc123", "2026-08-27")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", a.Version())
	assert.NotNil(t, a.Config())
	assert.NotNil(t, a.Logger())
}

func TestAppClientIsSingleton(t *testing.T) {
	a, err := New("dev", "unknown", "unknown", WithConfig(&Config{
		BaseURL: "http://localhost:8080",
	}))
	require.NoError(t, err)

	first, err := a.Client()
	require.NoError(t, err)
	second, err := a.Client()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
