package model

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/domain/protocol"
	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// Gemini talks to the Gemini API through its native SDK instead of the
// OpenAI-compatibility endpoint. Selected only by A2UI_PROVIDER=gemini.
type Gemini struct {
	model  string
	client *genai.Client
	logger *zap.Logger
}

var _ Client = (*Gemini)(nil)
var _ Prober = (*Gemini)(nil)

// NewGemini creates the native Gemini adapter.
func NewGemini(ctx context.Context, key, model string, logger *zap.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, apierrors.NewProviderError(ProviderGemini, 0, "client construction failed", err)
	}
	return &Gemini{model: model, client: client, logger: logger}, nil
}

// Generate sends one generateContent call and returns the concatenated
// text parts of the first candidate, or "" when none are returned.
func (g *Gemini) Generate(ctx context.Context, p prompt.Prompt) (string, error) {
	gen := g.client.GenerativeModel(g.model)
	if p.System != "" {
		gen.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.System)}}
	}

	resp, err := gen.GenerateContent(ctx, toGenaiParts(p.Parts)...)
	if err != nil {
		return "", apierrors.NewProviderError(ProviderGemini, 0, "generateContent failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.Warn("Provider returned no candidates", zap.String("provider", ProviderGemini))
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Probe verifies the credential by reading one entry from the model list.
func (g *Gemini) Probe(ctx context.Context) error {
	it := g.client.ListModels(ctx)
	if _, err := it.Next(); err != nil && err != iterator.Done {
		return apierrors.NewProviderError(ProviderGemini, 0, "model list probe failed", err)
	}
	return nil
}

func (g *Gemini) Name() string { return ProviderGemini }

func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Close() error { return g.client.Close() }

func toGenaiParts(parts []protocol.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case protocol.TextPart:
			out = append(out, genai.Text(v.Text))
		case protocol.InlineDataPart:
			out = append(out, genai.Blob{MIMEType: v.MIMEType, Data: v.Data})
		}
	}
	return out
}
