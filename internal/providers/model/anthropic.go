package model

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/domain/protocol"
	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

const (
	anthropicVersion = "2023-06-01"

	// anthropicMaxTokens caps each completion; the messages API requires
	// an explicit value.
	anthropicMaxTokens = 8192
)

// Anthropic talks to the Anthropic messages API.
type Anthropic struct {
	key    string
	model  string
	http   *resty.Client
	logger *zap.Logger
}

var _ Client = (*Anthropic)(nil)
var _ Prober = (*Anthropic)(nil)

type anthropicRequest struct {
	Model     string             `json:"model"`
	System    string             `json:"system,omitempty"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicAPIError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropic creates the Anthropic adapter. Completion calls are not
// retried and have no client timeout.
func NewAnthropic(key, model, baseURL string, logger *zap.Logger) *Anthropic {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("x-api-key", key).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &Anthropic{
		key:    key,
		model:  model,
		http:   httpClient,
		logger: logger,
	}
}

// Generate sends one messages call and returns the concatenated text
// blocks of the reply, or "" when none are returned.
func (a *Anthropic) Generate(ctx context.Context, p prompt.Prompt) (string, error) {
	body := anthropicRequest{
		Model:     a.model,
		System:    p.System,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: a.buildBlocks(p.Parts)},
		},
	}

	var out anthropicResponse
	var apiErr anthropicAPIError
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1/messages")
	if err != nil {
		return "", apierrors.NewProviderError(ProviderAnthropic, 0, "messages request failed", err)
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", apierrors.NewProviderError(ProviderAnthropic, resp.StatusCode(), msg, nil)
	}

	var sb strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		a.logger.Warn("Provider returned no text blocks", zap.String("provider", ProviderAnthropic))
	}
	return sb.String(), nil
}

// Probe verifies the credential by listing models. Unlike completion
// calls, the probe retries with backoff.
func (a *Anthropic) Probe(ctx context.Context) error {
	header := http.Header{
		"x-api-key":         []string{a.key},
		"anthropic-version": []string{anthropicVersion},
	}
	return probeEndpoint(ctx, ProviderAnthropic, a.http.BaseURL+"/v1/models", header)
}

func (a *Anthropic) Name() string { return ProviderAnthropic }

func (a *Anthropic) Model() string { return a.model }

func (a *Anthropic) Close() error {
	a.http.GetClient().CloseIdleConnections()
	return nil
}

// buildBlocks maps prompt parts to message content blocks. The declared
// media type wins over the sniffed one; a mismatch is only logged.
func (a *Anthropic) buildBlocks(parts []protocol.Part) []anthropicBlock {
	blocks := make([]anthropicBlock, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case protocol.TextPart:
			blocks = append(blocks, anthropicBlock{Type: "text", Text: v.Text})
		case protocol.InlineDataPart:
			if detected := mimetype.Detect(v.Data); !detected.Is(v.MIMEType) {
				a.logger.Warn("Declared media type differs from sniffed content",
					zap.String("declared", v.MIMEType),
					zap.String("detected", detected.String()),
				)
			}
			blocks = append(blocks, anthropicBlock{
				Type: "image",
				Source: &anthropicSource{
					Type:      "base64",
					MediaType: v.MIMEType,
					Data:      base64.StdEncoding.EncodeToString(v.Data),
				},
			})
		}
	}
	return blocks
}
