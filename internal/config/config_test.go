package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "OFF_SEARCH_URL", "OFF_PRODUCT_URL", "OFF_APP_NAME", "UPSTREAM_TIMEOUT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_SSLMODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 35*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, defaultSearchURL, cfg.Upstream.SearchURL)
	assert.Equal(t, defaultProductURL, cfg.Upstream.ProductURL)
	assert.Equal(t, "FoodRelay/1.0", cfg.Upstream.AppName)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.DB.Enabled())
	assert.Empty(t, cfg.DB.DSN)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OFF_APP_NAME", "GlutenScan/2.0")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "relay")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "relay")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "GlutenScan/2.0", cfg.Upstream.AppName)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "host=localhost port=5432 user=relay password=secret dbname=relay sslmode=disable", cfg.DB.DSN)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad timeout", env: map[string]string{"UPSTREAM_TIMEOUT": "soon"}},
		{name: "negative timeout", env: map[string]string{"UPSTREAM_TIMEOUT": "-1s"}},
		{name: "bad db port", env: map[string]string{"DB_HOST": "localhost", "DB_PORT": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
