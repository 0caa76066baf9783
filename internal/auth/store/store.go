package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so a Tx-scoped
// Store can hand out the same repos bound to the transaction.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a read/write transaction. It commits when fn
	// returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// WithReadTx is WithTx for lookups. Drivers that support it mark the
	// transaction read-only.
	WithReadTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns the user_info row for id or ErrNotFound.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// ExistsByID reports whether a row with id is present.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// CreateUser inserts a new row. A primary key collision is reported as
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}
