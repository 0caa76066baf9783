// Package postgres is the PostgreSQL driver for store.Store, built on the
// pgx stdlib adapter with goose migrations.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/userauth/internal/auth/store"
	"github.com/jackc/pgx/v5/pgconn"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
	q  *queries
}

// NewStore opens a pgx-backed pool for dsn and verifies it is reachable.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStoreFromDB(db), nil
}

// NewStoreFromDB wraps an existing pool.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db, q: newQueries(db)}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	return s.begin(ctx, nil)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.withTx(ctx, nil, fn)
}

func (s *Store) WithReadTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.withTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.q} }

func (s *Store) begin(ctx context.Context, opts *sql.TxOptions) (*txStore, error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx store.Tx) error) error {
	tx, err := s.begin(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
