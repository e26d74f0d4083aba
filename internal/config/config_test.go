package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "CHAT_THINKING_DELAY", "CHAT_GREETING", "CHAT_GREETING_ENABLED",
		"CHAT_MAX_SESSIONS", "CHAT_RULES_FILE", "CHAT_WATCH_RULES", "LOG_LEVEL", "LOG_DEVELOPMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 350*time.Millisecond, cfg.Chat.ThinkingDelay)
	assert.Equal(t, 1000, cfg.Chat.MaxSessions)
	assert.Equal(t, intent.DefaultGreeting, cfg.Chat.Greeting)
	assert.Empty(t, cfg.Chat.RulesFile)
	assert.True(t, cfg.Chat.WatchRules)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CHAT_THINKING_DELAY", "0s")
	t.Setenv("CHAT_GREETING", "Hi!")
	t.Setenv("CHAT_MAX_SESSIONS", "5")
	t.Setenv("CHAT_RULES_FILE", " rules.yaml ")
	t.Setenv("CHAT_WATCH_RULES", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Zero(t, cfg.Chat.ThinkingDelay)
	assert.Equal(t, "Hi!", cfg.Chat.Greeting)
	assert.Equal(t, 5, cfg.Chat.MaxSessions)
	assert.Equal(t, "rules.yaml", cfg.Chat.RulesFile)
	assert.False(t, cfg.Chat.WatchRules)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadGreetingOptOut(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAT_GREETING", "Hi!")
	t.Setenv("CHAT_GREETING_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Chat.Greeting)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"port with space":  {"PORT", "80 80"},
		"negative delay":   {"CHAT_THINKING_DELAY", "-1s"},
		"bad delay":        {"CHAT_THINKING_DELAY", "soon"},
		"negative max":     {"CHAT_MAX_SESSIONS", "-1"},
		"bad watch toggle": {"CHAT_WATCH_RULES", "maybe"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"":          ":8080",
		"9090":      ":9090",
		":7000":     ":7000",
		"0.0.0.0:1": "0.0.0.0:1",
	}
	for in, want := range cases {
		got, err := listenAddr(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
