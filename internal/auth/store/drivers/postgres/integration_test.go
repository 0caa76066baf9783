//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/userauth/internal/auth/store"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway postgres container and returns its DSN.
func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "userauth",
			"POSTGRES_PASSWORD": "userauth",
			"POSTGRES_DB":       "userauth",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://userauth:userauth@%s:%s/userauth?sslmode=disable", host, port.Port())
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	s, err := NewStore(ctx, setupPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())

	u := sampleUser()
	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, u)
	}))

	got, err := s.Users().GetUserByID(ctx, u.UserID)
	require.NoError(t, err)
	require.Equal(t, u, got)

	err = s.Users().CreateUser(ctx, u)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	var exists bool
	require.NoError(t, s.WithReadTx(ctx, func(tx store.Tx) error {
		var err error
		exists, err = tx.Users().ExistsByID(ctx, "ghost")
		return err
	}))
	require.False(t, exists)

	_, err = s.Users().GetUserByID(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
