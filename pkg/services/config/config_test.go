package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	path := writeFile(t, "credentials", `
[default]
api_key = key-default
api_secret = secret-default

[trading-bot]
api_key = key-bot
api_secret = secret-bot

[broken]
api_key = key-only
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	t.Run("lists profiles with keys", func(t *testing.T) {
		profiles, err := registry.GetProfiles(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"default", "trading-bot", "broken"}, profiles)
	})

	t.Run("reads a profile's credentials", func(t *testing.T) {
		creds, err := registry.GetCredentials(ctx, "trading-bot")
		require.NoError(t, err)
		assert.Equal(t, "key-bot", creds.APIKey)
		assert.Equal(t, "secret-bot", creds.APISecret)
	})

	t.Run("rejects missing profile", func(t *testing.T) {
		_, err := registry.GetCredentials(ctx, "nope")
		assert.Error(t, err)
	})

	t.Run("rejects incomplete profile", func(t *testing.T) {
		_, err := registry.GetCredentials(ctx, "broken")
		assert.ErrorContains(t, err, "missing api_key or api_secret")
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		settings, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), settings)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
base_url: https://testnet.binance.vision
timeout: 3s
`)
		settings, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "https://testnet.binance.vision", settings.BaseURL)
		assert.Equal(t, 3*time.Second, settings.Timeout)
		assert.Equal(t, DefaultSettings().RecvWindow, settings.RecvWindow)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("both halves present", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvAPISecret, "env-secret")

		creds, ok := FromEnv()
		assert.True(t, ok)
		assert.Equal(t, "env-key", creds.APIKey)
		assert.Equal(t, "env-secret", creds.APISecret)
	})

	t.Run("secret missing", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvAPISecret, "")

		_, ok := FromEnv()
		assert.False(t, ok)
	})
}
