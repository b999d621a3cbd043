package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	// Fallback, when set, answers requests once the queue is empty.
	Fallback func(Request) (string, error)
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewPlaceholderProvider returns a MockProvider that answers every prompt
// with a short Markdown placeholder. It backs the "mock" provider so the
// wizard can be driven offline.
func NewPlaceholderProvider() *MockProvider {
	m := NewMockProvider()
	m.Fallback = func(req Request) (string, error) {
		first, _, _ := strings.Cut(strings.TrimSpace(req.Prompt), "\n")
		return fmt.Sprintf("### Contenido de ejemplo\n\n- Generado sin conexión para: %s\n", first), nil
	}
	return m
}

// Generate returns the next canned response, the fallback output, or
// ErrProviderUnavailable if the queue is empty and no fallback is set.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if m.Fallback == nil {
			return nil, &ErrProviderUnavailable{Err: nil}
		}
		text, err := m.Fallback(req)
		if err != nil {
			return nil, err
		}
		return &Response{Text: text, Model: "mock", StopReason: "end"}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Text:       resp.Text,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
