package model

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// Provider identifiers accepted by the A2UI_PROVIDER override.
const (
	ProviderOpenAI       = "openai"
	ProviderGeminiCompat = "gemini-compat"
	ProviderGemini       = "gemini"
	ProviderAnthropic    = "anthropic"
)

// Default models and endpoints per provider.
const (
	defaultOpenAIModel    = "gpt-4o"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultAnthropicModel = "claude-sonnet-4-20250514"

	openAIBaseURL       = "https://api.openai.com/v1"
	geminiCompatBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	anthropicBaseURL    = "https://api.anthropic.com"
)

// Settings carries the credentials and overrides consulted during
// provider resolution. Fields map one-to-one to environment variables.
type Settings struct {
	OpenAIKey    string
	GeminiKey    string
	AnthropicKey string

	// Model overrides the provider's default model when set.
	Model string

	// BaseURL overrides the provider's default endpoint when set.
	BaseURL string

	// Provider forces a specific adapter instead of credential-order
	// selection. Empty means auto.
	Provider string
}

// Resolve constructs the model client for the given settings.
//
// Without a forced provider, the first present credential wins, in the
// order OpenAI, Gemini, Anthropic. The Gemini credential selects the
// OpenAI-compatibility endpoint; the native SDK transport is only used
// when forced with A2UI_PROVIDER=gemini. Returns an error wrapping
// ErrNoCredential when no usable credential is configured.
func Resolve(ctx context.Context, s Settings, logger *zap.Logger) (Client, error) {
	provider := s.Provider
	if provider == "" {
		switch {
		case s.OpenAIKey != "":
			provider = ProviderOpenAI
		case s.GeminiKey != "":
			provider = ProviderGeminiCompat
		case s.AnthropicKey != "":
			provider = ProviderAnthropic
		default:
			return nil, fmt.Errorf("resolve provider: %w (set OPENAI_API_KEY, GEMINI_API_KEY, or ANTHROPIC_API_KEY)", apierrors.ErrNoCredential)
		}
	}

	var client Client
	switch provider {
	case ProviderOpenAI:
		if s.OpenAIKey == "" {
			return nil, fmt.Errorf("provider %s forced: %w (OPENAI_API_KEY is empty)", provider, apierrors.ErrNoCredential)
		}
		client = NewOpenAICompat(ProviderOpenAI, s.OpenAIKey, orDefault(s.Model, defaultOpenAIModel), orDefault(s.BaseURL, openAIBaseURL), logger)

	case ProviderGeminiCompat:
		if s.GeminiKey == "" {
			return nil, fmt.Errorf("provider %s forced: %w (GEMINI_API_KEY is empty)", provider, apierrors.ErrNoCredential)
		}
		client = NewOpenAICompat(ProviderGeminiCompat, s.GeminiKey, orDefault(s.Model, defaultGeminiModel), orDefault(s.BaseURL, geminiCompatBaseURL), logger)

	case ProviderGemini:
		if s.GeminiKey == "" {
			return nil, fmt.Errorf("provider %s forced: %w (GEMINI_API_KEY is empty)", provider, apierrors.ErrNoCredential)
		}
		gemini, err := NewGemini(ctx, s.GeminiKey, orDefault(s.Model, defaultGeminiModel), logger)
		if err != nil {
			return nil, err
		}
		client = gemini

	case ProviderAnthropic:
		if s.AnthropicKey == "" {
			return nil, fmt.Errorf("provider %s forced: %w (ANTHROPIC_API_KEY is empty)", provider, apierrors.ErrNoCredential)
		}
		client = NewAnthropic(s.AnthropicKey, orDefault(s.Model, defaultAnthropicModel), orDefault(s.BaseURL, anthropicBaseURL), logger)

	default:
		return nil, fmt.Errorf("unknown provider %q (want %s, %s, %s, or %s)", provider, ProviderOpenAI, ProviderGeminiCompat, ProviderGemini, ProviderAnthropic)
	}

	logger.Info("Model client resolved",
		zap.String("provider", client.Name()),
		zap.String("model", client.Model()),
	)
	return client, nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
