// Package http contains the HTTP handlers for the dispatch service.
//
// The core endpoint is POST /a2ui: it buffers the request body, parses
// it as JSON, classifies the message, and either stores a capability
// catalog, acknowledges a user action, or runs the generation pipeline
// against the configured model provider. Every failure on that path is
// reported through a single envelope:
//
//	400 {"error": "Invalid message - <detail>"}
//
// Key Features:
//   - Catalog announcements short-circuit with a fixed acknowledgement
//   - Generation runs one or two sequential model calls (an optional
//     image-description pass feeds the UI-generation pass)
//   - Model calls are traced, timed, and counted per pass
//
// Example Usage:
//
//	handlers := http.NewHandlers(store, builder, client, tracer, metrics, logger)
//	router.POST("/a2ui", handlers.A2UI)
//	router.GET("/health", handlers.Health)
package http
