/*
Package monitoring provides Prometheus metrics for the dispatch service.

# Overview

This package tracks the HTTP surface, message dispatch outcomes, model
provider calls, and catalog state. Every collector lives on an
instance-scoped registry, so constructing a second Metrics (servers in
tests, for example) never panics on duplicate registration.

# Features

- HTTP request metrics (latency, throughput, size)
- Dispatch metrics per message kind and outcome
- Model call metrics (duration, status, in-flight gauge)
- Catalog announcement counter and loaded gauge
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.New()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record dispatch outcomes
	metrics.RecordDispatch("catalog", "ok")

	// Time model calls
	timer := monitoring.NewTimer(metrics, client.Name(), "generate_ui")
	// ... perform call ...
	timer.Stop("success")

# Metrics Endpoint

Expose this collector's registry through its handler:

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
