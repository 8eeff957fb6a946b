// Package main is the entry point for the A2UI dispatch service.
//
// The service accepts A2UI protocol messages on POST /a2ui, keeps the
// announced component catalog in memory, and turns generation requests
// into model provider calls.
//
// Architecture:
//
//	Client (browser) → A2UI service → Model provider (OpenAI / Gemini / Anthropic)
//
// The server provides:
//   - POST /a2ui message dispatch
//   - Prometheus metrics on /metrics
//   - Health endpoint on /health
//   - Optional static hosting for the browser client
//
// Configuration:
//   - Environment variables (12-factor), optionally from a .env file
//   - CLI flags (override env vars)
//
// Usage:
//
//	# OpenAI-backed, default port
//	OPENAI_API_KEY=sk-... ./server
//
//	# Anthropic-backed on another port
//	ANTHROPIC_API_KEY=sk-ant-... ./server -port 9000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
