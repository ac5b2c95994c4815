package ai

import "context"

// MockClient is a configurable mock for testing AI-backed features.
// Set CompleteFunc to control behavior in tests.
type MockClient struct {
	CompleteFunc func(ctx context.Context, prompt string, systemMessage string) (string, error)

	CompleteCalls int
}

// NewMockClient creates a new mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, prompt string, systemMessage string) (string, error) {
	m.CompleteCalls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, systemMessage)
	}
	return "", nil
}

var _ Client = (*MockClient)(nil)
