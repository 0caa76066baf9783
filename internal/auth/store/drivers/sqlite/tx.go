package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/aussiebroadwan/userauth/internal/auth/store"
)

type txStore struct {
	q        *queries
	commit   func() error
	rollback func() error
}

// newTx wraps a database/sql transaction.
func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		q:        newQueries(tx),
		commit:   tx.Commit,
		rollback: tx.Rollback,
	}
}

// newConnTx wraps a connection on which BEGIN has already run. The
// connection goes back to the pool once the transaction ends.
func newConnTx(conn *sql.Conn) *txStore {
	var (
		mu   sync.Mutex
		done bool
	)
	end := func(stmt string) error {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return sql.ErrTxDone
		}
		done = true

		if _, err := conn.ExecContext(context.Background(), stmt); err != nil {
			if stmt == "COMMIT" {
				if _, rbErr := conn.ExecContext(context.Background(), "ROLLBACK"); rbErr == nil {
					_ = conn.Close()
					return err
				}
			}
			discardConn(conn)
			return err
		}
		return conn.Close()
	}

	return &txStore{
		q:        newQueries(conn),
		commit:   func() error { return end("COMMIT") },
		rollback: func() error { return end("ROLLBACK") },
	}
}

func (t *txStore) Commit() error   { return t.commit() }
func (t *txStore) Rollback() error { return t.rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) WithReadTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users { return &usersRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations should be applied before starting a tx
