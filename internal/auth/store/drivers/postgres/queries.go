package postgres

import (
	"context"
	"database/sql"
)

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

const getUserByID = `SELECT user_id, user_name, password, email, addr1, addr2, roles,
       reg_id, reg_dt, chg_id, chg_dt
  FROM user_info
 WHERE user_id = $1`

const existsUserByID = `SELECT EXISTS(SELECT 1 FROM user_info WHERE user_id = $1)`

const createUser = `INSERT INTO user_info (
    user_id, user_name, password, email, addr1, addr2, roles,
    reg_id, reg_dt, chg_id, chg_dt
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const countUsers = `SELECT COUNT(*) FROM user_info`
