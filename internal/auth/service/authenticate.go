package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/pkg/cryptox"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

// PrincipalLookup loads the principal for a user ID or returns
// ErrUserNotFound.
type PrincipalLookup interface {
	AuthenticateLookup(ctx context.Context, userID string) (domain.Principal, error)
}

// Authenticator checks a user ID and password pair.
type Authenticator struct {
	Users PrincipalLookup

	dummyOnce sync.Once
	dummyHash string
}

// Authenticate returns the principal for userID when password matches.
// An unknown user and a wrong password both yield ErrBadCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, userID, password string) (domain.Principal, error) {
	l := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	p, err := a.Users.AuthenticateLookup(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		a.burnVerify(password)
		l.Info("login failed", slog.String("reason", "unknown user"))
		return domain.Principal{}, ErrBadCredentials
	}
	if err != nil {
		return domain.Principal{}, err
	}

	err = cryptox.VerifyPassword(password, p.PasswordHash)
	if errors.Is(err, cryptox.ErrPasswordMismatch) {
		l.Info("login failed", slog.String("reason", "password mismatch"))
		return domain.Principal{}, ErrBadCredentials
	}
	if err != nil {
		l.Error("stored password hash unusable", slog.Any("error", err))
		return domain.Principal{}, ErrBadCredentials
	}

	l.Info("login succeeded")
	return p, nil
}

// burnVerify spends the same work as a real verification so unknown users
// are not distinguishable by response time.
func (a *Authenticator) burnVerify(password string) {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = cryptox.HashPassword("userauth-dummy-password")
	})
	if a.dummyHash != "" {
		_ = cryptox.VerifyPassword(password, a.dummyHash)
	}
}
