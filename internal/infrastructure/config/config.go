package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Prompt    PromptConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// StaticDir, when set, serves the browser client for GET paths the
	// API does not claim.
	StaticDir string `envconfig:"A2UI_STATIC_DIR"`
}

// ProviderConfig holds model provider credentials and overrides.
type ProviderConfig struct {
	OpenAIKey    string `envconfig:"OPENAI_API_KEY"`
	GeminiKey    string `envconfig:"GEMINI_API_KEY"`
	AnthropicKey string `envconfig:"ANTHROPIC_API_KEY"`

	Model        string `envconfig:"A2UI_MODEL"`
	BaseURL      string `envconfig:"A2UI_BASE_URL"`
	Provider     string `envconfig:"A2UI_PROVIDER"`
	StartupProbe bool   `envconfig:"A2UI_STARTUP_PROBE" default:"false"`
}

// PromptConfig holds prompt template configuration.
type PromptConfig struct {
	// File points at a YAML template override set; empty uses built-ins.
	File string `envconfig:"A2UI_PROMPTS_FILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
