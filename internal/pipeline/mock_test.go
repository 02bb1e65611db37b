package pipeline

import (
	"context"
	"sync"
)

// mockLLM returns queued responses in order, then falls back to Response.
// Err, when set, fails every call.
type mockLLM struct {
	mu            sync.Mutex
	Response      string
	ResponseQueue []string
	Err           error
	Prompts       []string
}

func (m *mockLLM) Generate(_ context.Context, _, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

// mockTool is a canned tool for registry wiring in tests.
type mockTool struct {
	name   string
	output string
	err    error
	calls  int
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return "mock " + m.name }

func (m *mockTool) Call(context.Context, map[string]any) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}
