package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "")
	t.Setenv("LEDGER_API_KEY", "")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.PostgresAddress)
	assert.Equal(t, CategorizerHybrid, cfg.CategorizerMode)
	assert.Equal(t, 15, cfg.ClassifyBatchSize)
	assert.Equal(t, "INR", cfg.DefaultCurrency)
	assert.False(t, cfg.Credentials.ProviderAPIKey.IsSet())
	assert.False(t, cfg.Credentials.LedgerAPIKey.IsSet())
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "sk-test")
	t.Setenv("CATEGORIZER_MODE", CategorizerKeyword)
	t.Setenv("CLASSIFY_BATCH_SIZE", "20")
	t.Setenv("CACHE_BACKEND", CacheBackendBolt)
	t.Setenv("CACHE_FRONT_TTL", "30s")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	key, err := Require(cfg.Credentials.ProviderAPIKey, "PROVIDER_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)
	assert.Equal(t, CategorizerKeyword, cfg.CategorizerMode)
	assert.Equal(t, 20, cfg.ClassifyBatchSize)
	assert.Equal(t, CacheBackendBolt, cfg.CacheBackend)
	assert.Equal(t, 30*time.Second, cfg.CacheFrontTTL)
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad mode", "CATEGORIZER_MODE", "magic"},
		{"bad provider", "INFERENCE_PROVIDER", "groq"},
		{"bad int", "SYNC_PAGE_SIZE", "lots"},
		{"zero batch", "CLASSIFY_BATCH_SIZE", "0"},
		{"bad ttl", "CACHE_FRONT_TTL", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := ProcessEnvironmentVariables()
			assert.Error(t, err)
		})
	}
}

func TestRequire_NotConfigured(t *testing.T) {
	cfg := Config{}
	_, err := Require(cfg.Credentials.LedgerAPIKey, "LEDGER_API_KEY")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
