package model

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

func TestProbeAccepted(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAICompat(ProviderOpenAI, "probe-key", "gpt-4o", srv.URL, zap.NewNop())
	defer client.Close()

	require.NoError(t, client.Probe(context.Background()))
	assert.Equal(t, "Bearer probe-key", gotAuth)
}

func TestProbeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewOpenAICompat(ProviderOpenAI, "bad-key", "gpt-4o", srv.URL, zap.NewNop())
	defer client.Close()

	err := client.Probe(context.Background())
	assert.ErrorIs(t, err, apierrors.ErrProvider)
}

func TestAnthropicProbeHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, "probe-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewAnthropic("probe-key", "claude-sonnet-4-20250514", srv.URL, zap.NewNop())
	defer client.Close()

	assert.NoError(t, client.Probe(context.Background()))
}
