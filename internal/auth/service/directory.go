package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/internal/auth/store"
	"github.com/aussiebroadwan/userauth/pkg/cryptox"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

// FieldCipher encrypts columns stored at rest. *cryptox.FieldCipher
// satisfies it.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(text string) (string, error)
}

// DirectoryService owns the user_info records: existence checks,
// registration and profile lookups.
type DirectoryService struct {
	Store  store.Store
	Cipher FieldCipher
	Now    func() time.Time
}

func (s *DirectoryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckIDExists reports whether userID is already registered.
func (s *DirectoryService) CheckIDExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := s.Store.WithReadTx(ctx, func(tx store.Tx) error {
		var err error
		exists, err = tx.Users().ExistsByID(ctx, userID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("check user id: %w", err)
	}
	return exists, nil
}

// Register creates a user from reg and reports the outcome as a ResultCode.
// It never returns an error: unexpected failures are logged and reported as
// ResultFailure.
func (s *DirectoryService) Register(ctx context.Context, reg domain.Registration) domain.ResultCode {
	reg = reg.Normalize()
	l := slogx.FromContext(ctx).With(slog.String("user_id", reg.UserID))

	if reg.UserID == "" || reg.Password == "" {
		l.Warn("registration rejected", slog.Any("error", ErrInvalidRequest))
		return domain.ResultFailure
	}

	roles := domain.JoinRoles(domain.ParseRoles(reg.Roles))
	if roles == "" {
		roles = domain.RoleUser
	}

	// The write transaction covers only the existence check and the insert.
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		l.Error("registration failed", slog.Any("error", fmt.Errorf("hash password: %w", err)))
		return domain.ResultFailure
	}
	email, err := s.Cipher.Encrypt(reg.Email)
	if err != nil {
		l.Error("registration failed", slog.Any("error", fmt.Errorf("encrypt email: %w", err)))
		return domain.ResultFailure
	}

	code := domain.ResultFailure
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Users().ExistsByID(ctx, reg.UserID)
		if err != nil {
			return fmt.Errorf("check user id: %w", err)
		}
		if exists {
			code = domain.ResultDuplicateID
			return nil
		}

		stamp := s.now().Format(domain.AuditTimeLayout)
		err = tx.Users().CreateUser(ctx, domain.User{
			UserID:         reg.UserID,
			UserName:       reg.UserName,
			PasswordHash:   hash,
			EmailEncrypted: email,
			Addr1:          reg.Addr1,
			Addr2:          reg.Addr2,
			Roles:          roles,
			RegID:          reg.UserID,
			RegDt:          stamp,
			ChgID:          reg.UserID,
			ChgDt:          stamp,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := tx.Users().GetUserByID(ctx, reg.UserID); err != nil {
			return fmt.Errorf("confirm user: %w", err)
		}
		code = domain.ResultSuccess
		return nil
	})

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		l.Info("registration lost insert race")
		return domain.ResultDuplicateID
	case err != nil:
		l.Error("registration failed", slog.Any("error", err))
		return domain.ResultFailure
	case code == domain.ResultDuplicateID:
		l.Info("registration rejected, id taken")
	default:
		l.Info("user registered", slog.String("roles", roles))
	}
	return code
}

// GetProfile returns the profile of userID with the email decrypted.
func (s *DirectoryService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	u, err := s.lookup(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	email, err := s.Cipher.Decrypt(u.EmailEncrypted)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("decrypt email: %w", err)
	}

	return domain.Profile{
		UserID:   u.UserID,
		UserName: u.UserName,
		Email:    email,
		Addr1:    u.Addr1,
		Addr2:    u.Addr2,
		Roles:    u.Roles,
		RegID:    u.RegID,
		RegDt:    u.RegDt,
		ChgID:    u.ChgID,
		ChgDt:    u.ChgDt,
	}, nil
}

// AuthenticateLookup loads the principal used for a credential check.
func (s *DirectoryService) AuthenticateLookup(ctx context.Context, userID string) (domain.Principal, error) {
	u, err := s.lookup(ctx, userID)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{
		UserID:       u.UserID,
		UserName:     u.UserName,
		Roles:        u.Roles,
		PasswordHash: u.PasswordHash,
	}, nil
}

// CountUsers returns the number of registered users.
func (s *DirectoryService) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.Store.WithReadTx(ctx, func(tx store.Tx) error {
		var err error
		n, err = tx.Users().CountUsers(ctx)
		return err
	})
	return n, err
}

func (s *DirectoryService) lookup(ctx context.Context, userID string) (domain.User, error) {
	var u domain.User
	err := s.Store.WithReadTx(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
