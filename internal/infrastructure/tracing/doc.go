/*
Package tracing provides lightweight request tracing.

# Overview

This package tracks each request's path through the dispatch pipeline
with trace and span identifiers. It follows OpenTelemetry concepts with
a minimal implementation: spans are logged, not exported.

# Features

- Trace context propagation via HTTP headers
- Span creation with parent-child relationships
- Automatic ULID-based trace and span ID generation
- Gin middleware for automatic instrumentation
- Structured logging integration
- Buffered asynchronous span collection

# Usage

	// Create tracer
	tracer := tracing.New("a2ui", logger)

	// HTTP middleware
	router.Use(tracing.HTTPMiddleware(tracer))

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "generate_ui")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

	span.SetTag("provider", client.Name())

# Trace Format

Traces use standard HTTP headers for propagation:
- X-Trace-ID: Unique identifier for entire request flow
- X-Span-ID: Identifier for current operation
*/
package tracing
