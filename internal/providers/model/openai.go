package model

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/domain/protocol"
	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// OpenAICompat speaks the OpenAI chat-completions wire format. It backs
// both the OpenAI provider and Gemini's compatibility endpoint, and any
// custom base URL that serves the same API.
type OpenAICompat struct {
	name   string
	key    string
	model  string
	http   *resty.Client
	logger *zap.Logger
}

var _ Client = (*OpenAICompat)(nil)
var _ Prober = (*OpenAICompat)(nil)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage content is either a plain string or []contentBlock; the
// block form only appears when an image part is attached.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentBlock struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatAPIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAICompat creates an adapter for an OpenAI-format endpoint.
// Completion calls are not retried and have no client timeout; a hung
// provider call hangs the request.
func NewOpenAICompat(name, key, model, baseURL string, logger *zap.Logger) *OpenAICompat {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(key).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &OpenAICompat{
		name:   name,
		key:    key,
		model:  model,
		http:   httpClient,
		logger: logger,
	}
}

// Generate sends one chat-completion request and returns the text of
// the first choice, or "" when the endpoint returns no choices.
func (c *OpenAICompat) Generate(ctx context.Context, p prompt.Prompt) (string, error) {
	body := chatRequest{Model: c.model, Messages: buildChatMessages(p)}

	var out chatResponse
	var apiErr chatAPIError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", apierrors.NewProviderError(c.name, 0, "completion request failed", err)
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", apierrors.NewProviderError(c.name, resp.StatusCode(), msg, nil)
	}

	if len(out.Choices) == 0 {
		c.logger.Warn("Provider returned no choices", zap.String("provider", c.name))
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// Probe verifies the endpoint answers by listing models. Unlike
// completion calls, the probe retries with backoff.
func (c *OpenAICompat) Probe(ctx context.Context) error {
	header := http.Header{"Authorization": []string{"Bearer " + c.key}}
	return probeEndpoint(ctx, c.name, c.http.BaseURL+"/models", header)
}

func (c *OpenAICompat) Name() string { return c.name }

func (c *OpenAICompat) Model() string { return c.model }

func (c *OpenAICompat) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// buildChatMessages maps a prompt to OpenAI chat messages: one system
// message when present, then one user message. Text-only prompts use
// plain string content; prompts with an image use content blocks.
func buildChatMessages(p prompt.Prompt) []chatMessage {
	messages := make([]chatMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: p.System})
	}

	if len(p.Parts) == 1 {
		if text, ok := p.Parts[0].(protocol.TextPart); ok {
			return append(messages, chatMessage{Role: "user", Content: text.Text})
		}
	}

	blocks := make([]contentBlock, 0, len(p.Parts))
	for _, part := range p.Parts {
		switch v := part.(type) {
		case protocol.TextPart:
			blocks = append(blocks, contentBlock{Type: "text", Text: v.Text})
		case protocol.InlineDataPart:
			blocks = append(blocks, contentBlock{Type: "image_url", ImageURL: &imageRef{URL: v.DataURI()}})
		}
	}
	return append(messages, chatMessage{Role: "user", Content: blocks})
}
