package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"devgate/internal/models"
)

const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

const defaultCleanupDelaySeconds = 2

type TelegramConfig struct {
	Token       string `yaml:"token"`
	Mode        string `yaml:"mode"`
	WebhookURL  string `yaml:"webhook_url"`
	PollTimeout int    `yaml:"poll_timeout"`
	Debug       bool   `yaml:"debug"`
}

type VerificationConfig struct {
	TimeoutSeconds      int               `yaml:"timeout_seconds"`
	CleanupDelaySeconds *int              `yaml:"cleanup_delay_seconds"`
	Questions           []models.Question `yaml:"questions"`
}

func (v VerificationConfig) Timeout() time.Duration {
	return time.Duration(v.TimeoutSeconds) * time.Second
}

// CleanupDelay is zero only when cleanup_delay_seconds is set to 0 explicitly.
func (v VerificationConfig) CleanupDelay() time.Duration {
	if v.CleanupDelaySeconds == nil {
		return defaultCleanupDelaySeconds * time.Second
	}
	return time.Duration(*v.CleanupDelaySeconds) * time.Second
}

type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	Verification VerificationConfig `yaml:"verification"`
}

// LoadConfig reads the YAML file at path. A missing file is fine as long as
// the token comes from the environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DEV_GATEKEEPER_BOT"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("DEVGATE_API_SECRET"); v != "" {
		c.Server.APISecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Telegram.Mode == "" {
		c.Telegram.Mode = ModePolling
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 60
	}
	if c.Verification.TimeoutSeconds == 0 {
		c.Verification.TimeoutSeconds = 60
	}
	if c.Verification.CleanupDelaySeconds == nil {
		d := defaultCleanupDelaySeconds
		c.Verification.CleanupDelaySeconds = &d
	}
}

func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram token is required (telegram.token or DEV_GATEKEEPER_BOT)")
	}
	switch c.Telegram.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.Telegram.WebhookURL == "" {
			return errors.New("telegram.webhook_url is required in webhook mode")
		}
	default:
		return fmt.Errorf("unknown telegram.mode %q", c.Telegram.Mode)
	}
	if c.Verification.TimeoutSeconds < 0 || c.Verification.CleanupDelay() < 0 {
		return errors.New("verification durations must not be negative")
	}
	for i, q := range c.Verification.Questions {
		if q.Prompt == "" || q.Answer == "" {
			return fmt.Errorf("verification.questions[%d]: question and answer are required", i)
		}
	}
	return nil
}
