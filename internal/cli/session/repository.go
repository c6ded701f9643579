package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// StorageKey is the durable key the session record is stored under
const StorageKey = "userDetails"

// Repository reads and writes the session record in durable storage
type Repository struct {
	store  domain.KeyValueStore
	logger *slog.Logger
}

// NewRepository creates a session repository over store
func NewRepository(store domain.KeyValueStore, logger *slog.Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Load returns the stored session. ok is false when nothing is stored or the
// stored value is not a JSON object; the latter is logged and left in place.
// Parseable records are returned as-is, with or without an identity marker.
func (r *Repository) Load(ctx context.Context) (entity.Session, bool, error) {
	raw, ok, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, false, domain.NewStorageError("read", err)
	}
	if !ok {
		return nil, false, nil
	}

	var m map[string]any
	if err := sonic.UnmarshalString(raw, &m); err != nil || m == nil {
		r.logger.Warn("ignoring malformed stored session",
			"key", StorageKey,
			"error", err,
		)
		return nil, false, nil
	}

	return entity.Session(m), true, nil
}

// Save writes the session record
func (r *Repository) Save(ctx context.Context, s entity.Session) error {
	raw, err := sonic.MarshalString(s)
	if err != nil {
		return domain.NewStorageError("encode", fmt.Errorf("marshal session: %w", err))
	}
	if err := r.store.Set(ctx, StorageKey, raw); err != nil {
		return domain.NewStorageError("write", err)
	}
	r.logger.Debug("session saved", "user_type", s.UserType())
	return nil
}

// Delete removes the session record
func (r *Repository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, StorageKey); err != nil {
		return domain.NewStorageError("delete", err)
	}
	return nil
}
