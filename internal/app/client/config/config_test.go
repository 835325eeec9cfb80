package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	t.Setenv("APP_ENV", "local")
	t.Setenv("SERVER_ADDRESS", "todo.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("TOKEN_PATH", "")
	t.Setenv("TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://todo.example.com", cfg.BaseURL())
	assert.Equal(t, filepath.Join(dir, "token"), cfg.TokenPath)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.IsLocal())
	assert.False(t, cfg.IsProd())
}

func TestLoad_EmptyServerAddress(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("SERVER_ADDRESS", "")
	viper.Set("SERVER_ADDRESS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestBaseURL_PlainHTTP(t *testing.T) {
	cfg := &Config{ServerAddress: "localhost:8080"}
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}
