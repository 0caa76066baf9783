package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/internal/auth/store"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.q.db.QueryRowContext(ctx, getUserByID, id).Scan(
		&u.UserID,
		&u.UserName,
		&u.PasswordHash,
		&u.EmailEncrypted,
		&u.Addr1,
		&u.Addr2,
		&u.Roles,
		&u.RegID,
		&u.RegDt,
		&u.ChgID,
		&u.ChgDt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *usersRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.q.db.QueryRowContext(ctx, existsUserByID, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.db.ExecContext(ctx, createUser,
		u.UserID,
		u.UserName,
		u.PasswordHash,
		u.EmailEncrypted,
		u.Addr1,
		u.Addr2,
		u.Roles,
		u.RegID,
		u.RegDt,
		u.ChgID,
		u.ChgDt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.db.QueryRowContext(ctx, countUsers).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
