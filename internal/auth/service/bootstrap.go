package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/pkg/cryptox"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

var ErrBootstrapFailedToCreateAdmin = errors.New("failed to create admin user")

const defaultAdminName = "admin"

// AdminSeed describes the administrator registered at startup.
type AdminSeed struct {
	UserID   string
	Password string
	UserName string
	Email    string
}

type BootstrapService struct {
	Directory *DirectoryService
}

// EnsureAdmin registers seed with ROLE_ADMIN and ROLE_USER unless the ID is
// already taken. When seed has no password one is generated and returned;
// the caller is responsible for showing it to the operator once.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, seed AdminSeed) (generated string, err error) {
	l := slogx.FromContext(ctx).With(slog.String("admin_user_id", seed.UserID))

	if seed.UserID == "" {
		return "", nil
	}

	exists, err := s.Directory.CheckIDExists(ctx, seed.UserID)
	if err != nil {
		return "", err
	}
	if exists {
		l.Debug("admin user already registered")
		return "", nil
	}

	password := seed.Password
	if password == "" {
		if password, err = cryptox.GeneratePassword(); err != nil {
			return "", err
		}
		generated = password
	}

	name := seed.UserName
	if name == "" {
		name = defaultAdminName
	}

	code := s.Directory.Register(ctx, domain.Registration{
		UserID:   seed.UserID,
		UserName: name,
		Password: password,
		Email:    seed.Email,
		Roles:    domain.JoinRoles([]string{domain.RoleAdmin, domain.RoleUser}),
	})
	switch code {
	case domain.ResultSuccess:
		l.Info("admin user registered")
		return generated, nil
	case domain.ResultDuplicateID:
		return "", nil
	default:
		return "", ErrBootstrapFailedToCreateAdmin
	}
}
