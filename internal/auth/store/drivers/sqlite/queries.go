package sqlite

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

const getUserByID = `
SELECT user_id, user_name, password, email, addr1, addr2, roles,
       reg_id, reg_dt, chg_id, chg_dt
FROM user_info
WHERE user_id = ?`

const existsUserByID = `SELECT EXISTS(SELECT 1 FROM user_info WHERE user_id = ?)`

const createUser = `
INSERT INTO user_info (
    user_id, user_name, password, email, addr1, addr2, roles,
    reg_id, reg_dt, chg_id, chg_dt
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const countUsers = `SELECT COUNT(*) FROM user_info`
