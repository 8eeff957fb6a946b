package model

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/domain/protocol"
	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

func TestAnthropicGenerate(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"content":[{"type":"text","text":"{\"type\":"},{"type":"text","text":"\"Card\"}"}]}`))
	}))
	defer srv.Close()

	client := NewAnthropic("test-key", "claude-sonnet-4-20250514", srv.URL, zap.NewNop())
	defer client.Close()

	text, err := client.Generate(context.Background(), textPrompt("system rules", "build a card"))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Card"}`, text, "text blocks concatenate in order")

	assert.Equal(t, "claude-sonnet-4-20250514", captured.Model)
	assert.Equal(t, "system rules", captured.System)
	assert.Equal(t, anthropicMaxTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	require.Len(t, captured.Messages[0].Content, 1)
	assert.Equal(t, "build a card", captured.Messages[0].Content[0].Text)
}

func TestAnthropicGenerateImage(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"content":[{"type":"text","text":"a dashboard"}]}`))
	}))
	defer srv.Close()

	client := NewAnthropic("k", "claude-sonnet-4-20250514", srv.URL, zap.NewNop())
	defer client.Close()

	p := prompt.Prompt{
		System: "describe",
		Parts: []protocol.Part{
			protocol.TextPart{Text: "catalog here"},
			protocol.InlineDataPart{MIMEType: "image/png", Data: []byte("hello")},
		},
	}
	text, err := client.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "a dashboard", text)

	blocks := captured.Messages[0].Content
	require.Len(t, blocks, 2)
	assert.Equal(t, "text", blocks[0].Type)

	image := blocks[1]
	assert.Equal(t, "image", image.Type)
	require.NotNil(t, image.Source)
	assert.Equal(t, "base64", image.Source.Type)
	assert.Equal(t, "image/png", image.Source.MediaType)
	assert.Equal(t, "aGVsbG8=", image.Source.Data)
}

func TestAnthropicGenerateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"Rate limited"}}`))
	}))
	defer srv.Close()

	client := NewAnthropic("k", "claude-sonnet-4-20250514", srv.URL, zap.NewNop())
	defer client.Close()

	_, err := client.Generate(context.Background(), textPrompt("", "hi"))
	require.Error(t, err)

	var provErr *apierrors.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
	assert.Contains(t, provErr.Message, "Rate limited")
}

func TestAnthropicGenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	client := NewAnthropic("k", "claude-sonnet-4-20250514", srv.URL, zap.NewNop())
	defer client.Close()

	text, err := client.Generate(context.Background(), textPrompt("", "hi"))
	require.NoError(t, err)
	assert.Empty(t, text)
}
