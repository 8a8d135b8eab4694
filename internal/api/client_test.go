package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatus(t *testing.T) {
	// GIVEN
	env := createTestEnv(t, []string{testToken})
	server := httptest.NewServer(env.rest)
	defer server.Close()
	client := NewClient(server.URL+"/", "", "en")

	// WHEN
	status, err := client.Status(context.Background())

	// THEN
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	require.NotNil(t, status.CurrentValue)
	assert.Equal(t, 9, *status.CurrentValue)
	assert.Equal(t, "FPS limit: 9, connected: 0, enabled: true", status.Message)
}

func TestClientToggle(t *testing.T) {
	// GIVEN
	env := createTestEnv(t, []string{testToken})
	server := httptest.NewServer(env.rest)
	defer server.Close()
	client := NewClient(server.URL, testToken, "de")

	// WHEN
	result, err := client.Toggle(context.Background())

	// THEN
	require.NoError(t, err)
	assert.False(t, result.Enabled)
	assert.Equal(t, "Dynamisches FPS-Limit deaktiviert, Limit auf 60 zurückgesetzt", result.Message)
	assert.False(t, env.controller.Status().Enabled)
}

func TestClientToggleDenied(t *testing.T) {
	// GIVEN
	env := createTestEnv(t, []string{testToken})
	server := httptest.NewServer(env.rest)
	defer server.Close()
	client := NewClient(server.URL, "wrong", "es")

	// WHEN
	_, err := client.Toggle(context.Background())

	// THEN
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No tienes permiso para hacer eso")
	assert.True(t, env.controller.Status().Enabled)
}

func TestClientUnreachable(t *testing.T) {
	// GIVEN
	client := NewClient("http://127.0.0.1:1", "", "")

	// WHEN
	_, err := client.Status(context.Background())

	// THEN
	assert.Error(t, err)
}
