package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.IsLambda)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestValidate(t *testing.T) {
	cfg := &Config{ServerAddress: ":8000", MaxBodyBytes: 0}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ServerAddress: "", MaxBodyBytes: 1024}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ServerAddress: ":8000", MaxBodyBytes: 1024}
	assert.NoError(t, cfg.Validate())
}
