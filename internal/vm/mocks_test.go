package vm

import (
	"context"
	"sync"
)

// mockClient is a mock implementation of the manifestClient interface for
// testing.
type mockClient struct {
	mu sync.Mutex

	// Configurable behavior
	createFunc func(ctx context.Context, manifest []byte) error

	// Call tracking
	createCalls [][]byte
}

// newMockClient creates a mock client whose Create always succeeds.
func newMockClient() *mockClient {
	return &mockClient{
		createFunc: func(ctx context.Context, manifest []byte) error {
			return nil
		},
	}
}

func (m *mockClient) Create(ctx context.Context, manifest []byte) error {
	m.mu.Lock()
	buf := make([]byte, len(manifest))
	copy(buf, manifest)
	m.createCalls = append(m.createCalls, buf)
	m.mu.Unlock()

	return m.createFunc(ctx, manifest)
}

// calls returns a snapshot of the manifests submitted so far.
func (m *mockClient) calls() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]byte, len(m.createCalls))
	copy(out, m.createCalls)
	return out
}
