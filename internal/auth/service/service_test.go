package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/internal/auth/store"
	"github.com/aussiebroadwan/userauth/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/userauth/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

// newFileStore opens a database file the way the application does, so
// concurrent transactions run on separate connections.
func newFileStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "auth.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestDirectory(t *testing.T) *DirectoryService {
	t.Helper()
	return newDirectory(t, newTestStore(t))
}

func newDirectory(t *testing.T, s store.Store) *DirectoryService {
	t.Helper()

	cipher, err := cryptox.NewFieldCipher([]byte("service-test-key"))
	require.NoError(t, err)

	return &DirectoryService{
		Store:  s,
		Cipher: cipher,
		Now:    func() time.Time { return fixedNow },
	}
}

func aliceRegistration() domain.Registration {
	return domain.Registration{
		UserID:   "alice123",
		UserName: "Alice",
		Password: "Secr3t!",
		Email:    "a@x.com",
		Addr1:    "Seoul",
		Addr2:    "Gangnam-gu 1",
	}
}

func TestRegisterAndProfile(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)

	exists, err := dir.CheckIDExists(ctx, "alice123")
	require.NoError(t, err)
	require.False(t, exists)

	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, aliceRegistration()))

	exists, err = dir.CheckIDExists(ctx, "alice123")
	require.NoError(t, err)
	require.True(t, exists)

	profile, err := dir.GetProfile(ctx, "alice123")
	require.NoError(t, err)
	require.Equal(t, domain.Profile{
		UserID:   "alice123",
		UserName: "Alice",
		Email:    "a@x.com",
		Addr1:    "Seoul",
		Addr2:    "Gangnam-gu 1",
		Roles:    domain.RoleUser,
		RegID:    "alice123",
		RegDt:    "2024-03-01 09:30:00",
		ChgID:    "alice123",
		ChgDt:    "2024-03-01 09:30:00",
	}, profile)
}

func TestRegisterStoresSecretsProtected(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)
	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, aliceRegistration()))

	u, err := dir.Store.Users().GetUserByID(ctx, "alice123")
	require.NoError(t, err)

	require.NotEqual(t, "Secr3t!", u.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("Secr3t!", u.PasswordHash))
	require.NotEqual(t, "a@x.com", u.EmailEncrypted)
	require.NotEmpty(t, u.EmailEncrypted)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)

	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, aliceRegistration()))

	again := aliceRegistration()
	again.UserName = "Mallory"
	require.Equal(t, domain.ResultDuplicateID, dir.Register(ctx, again))

	profile, err := dir.GetProfile(ctx, "alice123")
	require.NoError(t, err)
	require.Equal(t, "Alice", profile.UserName, "duplicate must not overwrite")
}

func TestRegisterTrimsFields(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)

	reg := aliceRegistration()
	reg.UserID = "  alice123 "
	reg.Email = " a@x.com "
	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, reg))

	profile, err := dir.GetProfile(ctx, "alice123")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", profile.Email)
}

func TestRegisterRejectsMissingID(t *testing.T) {
	dir := newTestDirectory(t)

	reg := aliceRegistration()
	reg.UserID = "   "
	require.Equal(t, domain.ResultFailure, dir.Register(context.Background(), reg))
}

func TestRegisterStoreFailure(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)
	require.NoError(t, dir.Store.Close())

	require.Equal(t, domain.ResultFailure, dir.Register(ctx, aliceRegistration()))
}

func registerConcurrently(dir *DirectoryService, regs []domain.Registration) []domain.ResultCode {
	results := make([]domain.ResultCode, len(regs))
	var wg sync.WaitGroup
	for i, reg := range regs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = dir.Register(context.Background(), reg)
		}()
	}
	wg.Wait()
	return results
}

func TestRegisterConcurrentSameID(t *testing.T) {
	const n = 8

	stores := map[string]func(*testing.T) store.Store{
		"memory": newTestStore,
		"file":   newFileStore,
	}
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			dir := newDirectory(t, open(t))

			regs := make([]domain.Registration, n)
			for i := range regs {
				regs[i] = aliceRegistration()
			}

			var success, dup int
			for _, r := range registerConcurrently(dir, regs) {
				switch r {
				case domain.ResultSuccess:
					success++
				case domain.ResultDuplicateID:
					dup++
				}
			}
			require.Equal(t, 1, success)
			require.Equal(t, n-1, dup)
		})
	}
}

func TestRegisterConcurrentDistinctIDs(t *testing.T) {
	const n = 8
	dir := newDirectory(t, newFileStore(t))

	regs := make([]domain.Registration, n)
	for i := range regs {
		regs[i] = aliceRegistration()
		regs[i].UserID = fmt.Sprintf("user%04d", i)
	}

	for i, r := range registerConcurrently(dir, regs) {
		require.Equal(t, domain.ResultSuccess, r, regs[i].UserID)
	}

	count, err := dir.CountUsers(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, n, count)
}

func TestGetProfileNotFound(t *testing.T) {
	dir := newTestDirectory(t)

	_, err := dir.GetProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterCustomRoles(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)

	reg := aliceRegistration()
	reg.Roles = "ROLE_ADMIN, ROLE_USER,ROLE_ADMIN"
	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, reg))

	p, err := dir.AuthenticateLookup(ctx, "alice123")
	require.NoError(t, err)
	require.Equal(t, "ROLE_ADMIN,ROLE_USER", p.Roles)
	require.Equal(t, []string{domain.RoleAdmin, domain.RoleUser}, p.RoleList())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)
	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, aliceRegistration()))

	auth := &Authenticator{Users: dir}

	t.Run("correct password", func(t *testing.T) {
		p, err := auth.Authenticate(ctx, "alice123", "Secr3t!")
		require.NoError(t, err)
		require.Equal(t, "alice123", p.UserID)
		require.Equal(t, "Alice", p.UserName)
		require.Equal(t, domain.RoleUser, p.Roles)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "alice123", "wrong")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown user looks the same", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "nobody", "Secr3t!")
		require.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestAuthenticateStoreError(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)
	require.NoError(t, dir.Store.Close())

	_, err := (&Authenticator{Users: dir}).Authenticate(ctx, "alice123", "Secr3t!")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBadCredentials)
}

func TestCountUsers(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory(t)

	n, err := dir.CountUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.Equal(t, domain.ResultSuccess, dir.Register(ctx, aliceRegistration()))
	n, err = dir.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}
