package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "LOG_MODE", "LLM_PROVIDER", "LLM_HTTP_TIMEOUT_MS", "LLM_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_API_BASE", "OPENAI_TEMPERATURE", "OPENAI_MAX_TOKENS",
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TEMPERATURE", "GEMINI_MAX_TOKENS",
		"CORS_ALLOW_ORIGIN", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", " Gemini ")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("LLM_MODEL", "gemini-2.5-flash")
	t.Setenv("GEMINI_TEMPERATURE", "0.1")
	t.Setenv("GEMINI_MAX_TOKENS", "800")
	t.Setenv("LLM_HTTP_TIMEOUT_MS", "1500")
	t.Setenv("PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "google-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 0.1, cfg.Gemini.Temperature)
	assert.Equal(t, 800, cfg.Gemini.MaxTokens)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 9090, cfg.Port)

	active, ok := cfg.Active()
	require.True(t, ok)
	assert.Equal(t, "google-key", active.APIKey)
}

func TestLoad_GeminiKeyWinsOverGoogleKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := `
port: 7000
provider: gemini
timeout: 20s
openai:
  model: gpt-4.1-mini
  temperature: 0.2
  max_tokens: 900
gemini:
  model: gemini-2.0-flash
  temperature: 0.3
  max_tokens: 700
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "7001")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
	assert.Equal(t, 900, cfg.OpenAI.MaxTokens)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric port", key: "PORT", val: "http"},
		{name: "temperature out of range", key: "OPENAI_TEMPERATURE", val: "3"},
		{name: "zero max tokens", key: "GEMINI_MAX_TOKENS", val: "0"},
		{name: "negative timeout", key: "LLM_HTTP_TIMEOUT_MS", val: "-5"},
		{name: "bad base url", key: "OPENAI_API_BASE", val: "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestActive_UnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.Provider = "anthropic"
	_, ok := cfg.Active()
	assert.False(t, ok)
}
