package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs_RedactsCredentials(t *testing.T) {
	kv := sanitizeKVs([]interface{}{"provider", "openai", "OPENAI_API_KEY", "sk-123", "max_tokens", 1200})
	assert.Equal(t, []interface{}{"provider", "openai", "OPENAI_API_KEY", "[REDACTED]", "max_tokens", 1200}, kv)
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	kv := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, kv)
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("request_id", "r1").Warn("plan fallback", "error_kind", "request", "apiKey", "secret")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "plan fallback", entries[0].Message)
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, "request", fields["error_kind"])
	assert.Equal(t, "[REDACTED]", fields["apiKey"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestLogger_ErrorLevel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Error("server stopped", "error", "bind: address already in use")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "bind: address already in use", entries[0].ContextMap()["error"])
}
