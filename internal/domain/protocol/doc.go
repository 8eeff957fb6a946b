// Package protocol defines the client message protocol for the /a2ui endpoint.
//
// Inbound payloads are a tagged union over three top-level fields:
//   - clientUiCapabilities: capability catalog announcement
//   - userAction: client-side event report (accepted, not acted on)
//   - request: UI generation request
//
// Classify decodes a raw body and returns an explicit Kind-tagged Message so
// handlers dispatch with an exhaustive switch instead of ad hoc field checks.
// A JSON null field counts as absent.
//
// The package also defines the multimodal content parts exchanged with model
// providers (Part, TextPart, InlineDataPart), the data-URI codec for inline
// images, and the fixed response envelopes returned to the client.
//
// Example Usage:
//
//	msg, err := protocol.Classify(body)
//	if err != nil {
//		// typed error from internal/shared/errors
//	}
//	switch msg.Kind {
//	case protocol.KindCatalog:
//		store.Put(msg.Catalog)
//	case protocol.KindGeneration:
//		run(msg.Generation)
//	}
package protocol
