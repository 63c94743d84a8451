package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "GEMINI_API_BASE_URL", "GEMINI_TIMEOUT",
	"COMMENT_BATCH_SIZE", "COMMENT_CONCURRENCY", "LOG_LEVEL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 30, cfg.Comments.BatchSize)
	assert.Equal(t, 1, cfg.Comments.Concurrency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "fallback")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("GEMINI_TIMEOUT", "15s")
	t.Setenv("COMMENT_BATCH_SIZE", "10")
	t.Setenv("COMMENT_CONCURRENCY", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10, cfg.Comments.BatchSize)
	assert.Equal(t, 3, cfg.Comments.Concurrency)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("GEMINI_API_KEY", "primary")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Gemini.APIKey)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMMENT_BATCH_SIZE", "many")
	t.Setenv("GEMINI_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Comments.BatchSize)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GEMINI_API_KEY=from-file\nCOMMENT_BATCH_SIZE=5\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
	assert.Equal(t, 5, cfg.Comments.BatchSize)
	// Variables already set win over the file.
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	t.Setenv("COMMENT_BATCH_SIZE", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "COMMENT_BATCH_SIZE")

	t.Setenv("COMMENT_BATCH_SIZE", "30")
	t.Setenv("COMMENT_CONCURRENCY", "-2")
	_, err = Load()
	assert.ErrorContains(t, err, "COMMENT_CONCURRENCY")

	cfg := &Config{Comments: CommentConfig{BatchSize: 1, Concurrency: 1}, Gemini: GeminiConfig{Timeout: -time.Second}}
	assert.Error(t, cfg.Validate())
}
