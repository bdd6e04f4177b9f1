package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	t.Setenv("DEV_GATEKEEPER_BOT", "")
	t.Setenv("DEVGATE_API_SECRET", "")
	t.Setenv("DATABASE_URL", "")
	path := writeConfig(t, `
telegram:
  token: "123:abc"
verification:
  timeout_seconds: 90
  questions:
    - question: "2+2?"
      answer: "4"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, ModePolling, cfg.Telegram.Mode)
	assert.Equal(t, 60, cfg.Telegram.PollTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 90*time.Second, cfg.Verification.Timeout())
	assert.Equal(t, 2*time.Second, cfg.Verification.CleanupDelay())
	require.Len(t, cfg.Verification.Questions, 1)
	assert.Equal(t, "4", cfg.Verification.Questions[0].Answer)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DEV_GATEKEEPER_BOT", "env-token")
	t.Setenv("DEVGATE_API_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/devgate")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, "s3cret", cfg.Server.APISecret)
	assert.Equal(t, "postgres://localhost/devgate", cfg.Database.DSN)
	assert.Equal(t, 60*time.Second, cfg.Verification.Timeout())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("DEV_GATEKEEPER_BOT", "env-token")
	path := writeConfig(t, "telegram:\n  token: file-token\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
}

func TestLoadConfig_ZeroCleanupDelayDisablesPacing(t *testing.T) {
	t.Setenv("DEV_GATEKEEPER_BOT", "")
	path := writeConfig(t, "telegram:\n  token: t\nverification:\n  cleanup_delay_seconds: 0\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Verification.CleanupDelaySeconds)
	assert.Zero(t, cfg.Verification.CleanupDelay())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "telegram: [unclosed")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing token", "log:\n  level: debug\n", "telegram token is required"},
		{"unknown mode", "telegram:\n  token: t\n  mode: carrier-pigeon\n", "unknown telegram.mode"},
		{"webhook without url", "telegram:\n  token: t\n  mode: webhook\n", "webhook_url is required"},
		{"negative timeout", "telegram:\n  token: t\nverification:\n  timeout_seconds: -1\n", "must not be negative"},
		{"negative cleanup delay", "telegram:\n  token: t\nverification:\n  cleanup_delay_seconds: -3\n", "must not be negative"},
		{"incomplete question", "telegram:\n  token: t\nverification:\n  questions:\n    - question: q\n", "question and answer are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEV_GATEKEEPER_BOT", "")
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Webhook(t *testing.T) {
	t.Setenv("DEV_GATEKEEPER_BOT", "")
	cfg, err := LoadConfig(writeConfig(t, "telegram:\n  token: t\n  mode: webhook\n  webhook_url: https://bot.example.com/telegram/webhook\n"))
	require.NoError(t, err)
	assert.Equal(t, ModeWebhook, cfg.Telegram.Mode)
}
