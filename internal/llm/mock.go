package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records requests. When
// the script runs out it returns an unavailable error.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	calls   []Request
}

// NewMockProvider returns a provider that replays replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if len(m.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	resp := &Response{Content: r.Content, Usage: r.Usage, Model: "mock", StopReason: stopEnd}
	return finish(req, resp)
}

// Push appends replies to the script.
func (m *MockProvider) Push(replies ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Calls returns the requests received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
