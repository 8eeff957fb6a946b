package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

func TestResolveCredentialOrder(t *testing.T) {
	tests := []struct {
		name         string
		settings     Settings
		wantProvider string
		wantModel    string
	}{
		{
			name:         "openai first",
			settings:     Settings{OpenAIKey: "ok", GeminiKey: "gk", AnthropicKey: "ak"},
			wantProvider: ProviderOpenAI,
			wantModel:    "gpt-4o",
		},
		{
			name:         "gemini compat when no openai key",
			settings:     Settings{GeminiKey: "gk", AnthropicKey: "ak"},
			wantProvider: ProviderGeminiCompat,
			wantModel:    "gemini-2.5-flash",
		},
		{
			name:         "anthropic last",
			settings:     Settings{AnthropicKey: "ak"},
			wantProvider: ProviderAnthropic,
			wantModel:    "claude-sonnet-4-20250514",
		},
		{
			name:         "model override",
			settings:     Settings{OpenAIKey: "ok", Model: "gpt-4o-mini"},
			wantProvider: ProviderOpenAI,
			wantModel:    "gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := Resolve(context.Background(), tt.settings, zap.NewNop())
			require.NoError(t, err)
			defer client.Close()

			assert.Equal(t, tt.wantProvider, client.Name())
			assert.Equal(t, tt.wantModel, client.Model())
		})
	}
}

func TestResolveBaseURLs(t *testing.T) {
	client, err := Resolve(context.Background(), Settings{GeminiKey: "gk"}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	compat, ok := client.(*OpenAICompat)
	require.True(t, ok, "legacy gemini credential must select the compatibility endpoint")
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai", compat.http.BaseURL)

	client, err = Resolve(context.Background(), Settings{OpenAIKey: "ok", BaseURL: "http://localhost:9999/v1/"}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	compat = client.(*OpenAICompat)
	assert.Equal(t, "http://localhost:9999/v1", compat.http.BaseURL, "trailing slash must be trimmed")
}

func TestResolveNoCredential(t *testing.T) {
	_, err := Resolve(context.Background(), Settings{}, zap.NewNop())
	assert.ErrorIs(t, err, apierrors.ErrNoCredential)
}

func TestResolveForcedProvider(t *testing.T) {
	client, err := Resolve(context.Background(), Settings{AnthropicKey: "ak", OpenAIKey: "ok", Provider: ProviderAnthropic}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, ProviderAnthropic, client.Name())

	// Forcing a provider whose credential is missing is an error even
	// when another credential is present.
	_, err = Resolve(context.Background(), Settings{OpenAIKey: "ok", Provider: ProviderGeminiCompat}, zap.NewNop())
	assert.ErrorIs(t, err, apierrors.ErrNoCredential)

	_, err = Resolve(context.Background(), Settings{OpenAIKey: "ok", Provider: "mistral"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestResolveNativeGemini(t *testing.T) {
	client, err := Resolve(context.Background(), Settings{GeminiKey: "gk", Provider: ProviderGemini}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, ProviderGemini, client.Name())
	assert.Equal(t, "gemini-2.5-flash", client.Model())
}
