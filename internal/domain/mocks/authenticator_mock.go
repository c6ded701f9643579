package mocks

import (
	"context"
	"sync"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// LoginCall records one Login invocation
type LoginCall struct {
	Role     entity.Role
	Username string
	Password string
}

// MockAuthenticator is a mock implementation of domain.Authenticator
type MockAuthenticator struct {
	LoginFunc func(ctx context.Context, role entity.Role, username, password string) (map[string]any, error)

	mu    sync.Mutex
	calls []LoginCall
}

// Login mocks the Login method
func (m *MockAuthenticator) Login(ctx context.Context, role entity.Role, username, password string) (map[string]any, error) {
	m.mu.Lock()
	m.calls = append(m.calls, LoginCall{Role: role, Username: username, Password: password})
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, role, username, password)
	}
	return map[string]any{"_id": "mock-id", "username": username}, nil
}

// Calls returns the recorded invocations
func (m *MockAuthenticator) Calls() []LoginCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LoginCall(nil), m.calls...)
}
