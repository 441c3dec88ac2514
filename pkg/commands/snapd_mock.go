package commands

import (
	"context"
	"errors"
)

// MockSnapdClient implements SnapdClient for testing purposes.
// Each method can be customized by setting the corresponding function field.
// If a function is not set, the method returns ErrMockNotImplemented.
type MockSnapdClient struct {
	ListSnapsFunc  func(ctx context.Context) ([]SnapDetails, error)
	SystemInfoFunc func(ctx context.Context) (*SystemInfo, error)

	// Track method calls for assertions
	Calls []MockCall
}

// MockCall records a method invocation for verification in tests.
type MockCall struct {
	Method string
	Args   []interface{}
}

// ErrMockNotImplemented is returned when a mock function is not set.
var ErrMockNotImplemented = errors.New("mock function not implemented")

func (m *MockSnapdClient) recordCall(method string, args ...interface{}) {
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
}

func (m *MockSnapdClient) ListSnaps(ctx context.Context) ([]SnapDetails, error) {
	m.recordCall("ListSnaps")
	if m.ListSnapsFunc != nil {
		return m.ListSnapsFunc(ctx)
	}
	return nil, ErrMockNotImplemented
}

func (m *MockSnapdClient) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	m.recordCall("SystemInfo")
	if m.SystemInfoFunc != nil {
		return m.SystemInfoFunc(ctx)
	}
	return nil, ErrMockNotImplemented
}
