// Package model adapts third-party LLM providers behind a single Client
// interface consumed by the generation pipeline.
//
// Adapters:
//   - OpenAICompat: OpenAI chat-completions wire format, also used for
//     Gemini's OpenAI-compatibility endpoint and any custom base URL
//   - Gemini: native Gemini SDK transport
//   - Anthropic: Anthropic messages API
//   - Mock: scripted test double
//
// Resolution picks an adapter from credentials and overrides:
//   - OPENAI_API_KEY selects OpenAI (model gpt-4o)
//   - else GEMINI_API_KEY selects the Gemini compatibility endpoint
//     (model gemini-2.5-flash)
//   - else ANTHROPIC_API_KEY selects Anthropic (claude-sonnet-4-20250514)
//   - A2UI_MODEL and A2UI_BASE_URL override the resolved defaults,
//     A2UI_PROVIDER forces a specific adapter
//
// Generation calls are never retried and carry no client-side timeout;
// cancellation comes only from the request context. The optional startup
// probe is the one place retries are used.
//
// Example Usage:
//
//	client, err := model.Resolve(ctx, settings, logger)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	text, err := client.Generate(ctx, prompt)
package model
