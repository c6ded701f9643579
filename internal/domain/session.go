package domain

import (
	"context"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// ============ Remote interface ============

// Authenticator exchanges credentials for a session payload
type Authenticator interface {
	// Login posts the credentials to the role's login endpoint and returns
	// the raw response object
	Login(ctx context.Context, role entity.Role, username, password string) (map[string]any, error)
}

// ============ Storage interface ============

// KeyValueStore is durable local storage that survives restarts
type KeyValueStore interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
