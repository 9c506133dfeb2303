package fsops

import (
	"context"
)

// MockRemover is a test double that records removal calls and returns preset failures.
type MockRemover struct {
	// Failures maps a full path to the error RemoveAll returns for it.
	Failures map[string]error

	// Calls records every path passed to RemoveAll, in order.
	Calls []string

	// Next receives the calls that have no preset failure. When nil those
	// calls succeed without touching the filesystem.
	Next Remover
}

// NewMockRemover creates a MockRemover with no failures and no calls.
func NewMockRemover() *MockRemover {
	return &MockRemover{
		Failures: make(map[string]error),
		Calls:    make([]string, 0),
	}
}

// RemoveAll records the call and returns the preset failure for path, if any.
func (m *MockRemover) RemoveAll(ctx context.Context, path string) error {
	m.Calls = append(m.Calls, path)

	if err, ok := m.Failures[path]; ok {
		return err
	}
	if m.Next != nil {
		return m.Next.RemoveAll(ctx, path)
	}
	return nil
}

// SetFailure makes RemoveAll fail for path with err.
func (m *MockRemover) SetFailure(path string, err error) {
	m.Failures[path] = err
}

// CallCount returns the number of RemoveAll calls made.
func (m *MockRemover) CallCount() int {
	return len(m.Calls)
}

// WasCalled reports whether RemoveAll was ever called for path.
func (m *MockRemover) WasCalled(path string) bool {
	for _, call := range m.Calls {
		if call == path {
			return true
		}
	}
	return false
}

// Reset clears all recorded calls and failures.
func (m *MockRemover) Reset() {
	m.Calls = make([]string, 0)
	m.Failures = make(map[string]error)
}
