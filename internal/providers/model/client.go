package model

import (
	"context"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
)

// Client issues chat-completion calls against one provider endpoint.
type Client interface {
	// Generate sends a single completion request and returns the
	// generated text. Empty output with a nil error is valid: some
	// providers legitimately return no content.
	Generate(ctx context.Context, p prompt.Prompt) (string, error)

	// Name identifies the provider for logs and metrics.
	Name() string

	// Model returns the resolved model identifier.
	Model() string

	// Close releases underlying connections.
	Close() error
}

// Prober is implemented by clients that can cheaply verify their
// endpoint answers before the server takes traffic.
type Prober interface {
	Probe(ctx context.Context) error
}
