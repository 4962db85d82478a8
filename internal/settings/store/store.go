package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the drivers. The
// settings repository hangs off it so transactional and non-transactional
// callers use the same methods.
type Store interface {
	Settings() Settings

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Settings persists one settings document per user.
type Settings interface {
	// GetByUserID returns ErrNotFound when the user has no document yet.
	GetByUserID(ctx context.Context, userID string) (domain.Settings, error)

	// Create inserts a new document. Returns ErrAlreadyExists if the user
	// already has one.
	Create(ctx context.Context, s domain.Settings) error

	// Upsert inserts the document or overwrites every section and
	// last_updated of the existing one. id and created_at of an existing
	// row are kept.
	Upsert(ctx context.Context, s domain.Settings) error

	// DeleteByUserID removes the user's document. Deleting a missing
	// document is not an error.
	DeleteByUserID(ctx context.Context, userID string) error

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
