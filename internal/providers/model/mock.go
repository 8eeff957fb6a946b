package model

import (
	"context"
	"sync"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
)

// Mock is a scripted Client for tests: it records every prompt it
// receives and replays the configured replies in order.
type Mock struct {
	mu sync.Mutex

	// Replies are returned by successive Generate calls; the last entry
	// repeats once the script is exhausted. Empty means every call
	// returns "".
	Replies []string

	// Err, when set, is returned by every Generate call.
	Err error

	// Prompts records each prompt passed to Generate, in call order.
	Prompts []prompt.Prompt

	// Calls counts Generate invocations.
	Calls int
}

var _ Client = (*Mock)(nil)

// Generate implements Client.
func (m *Mock) Generate(_ context.Context, p prompt.Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.Prompts = append(m.Prompts, p)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", nil
	}
	i := m.Calls - 1
	if i >= len(m.Replies) {
		i = len(m.Replies) - 1
	}
	return m.Replies[i], nil
}

// Name implements Client.
func (m *Mock) Name() string { return "mock" }

// Model implements Client.
func (m *Mock) Model() string { return "mock-model" }

// Close implements Client.
func (m *Mock) Close() error { return nil }
