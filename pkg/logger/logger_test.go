package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"openai_api_key", "sk-123", "destination", "Paris", "dangling"})
	assert.Equal(t, []interface{}{"openai_api_key", "[REDACTED]", "destination", "Paris", "dangling"}, got)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("request", "plan-trip").Warn("completion failed", "token", "abc", "days", 3)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "completion failed", entries[0].Message)
		assert.Equal(t, "plan-trip", ctx["request"])
		assert.Equal(t, "[REDACTED]", ctx["token"])
		assert.EqualValues(t, 3, ctx["days"])
	}
}

func TestSanitizeKVsRedactionKeys(t *testing.T) {
	for _, key := range []string{"API_KEY", "gemini_apikey", "refresh_token", "client_secret", "Authorization"} {
		got := sanitizeKVs([]interface{}{key, "value"})
		assert.Equal(t, "[REDACTED]", got[1], key)
	}
	got := sanitizeKVs([]interface{}{"monkey", "value"})
	assert.Equal(t, "value", got[1])
}
