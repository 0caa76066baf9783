//go:build e2e

package auth_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/userauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * This includes container setup, account setup, and assertions.
 */

const (
	testImageName = "userauth-test:latest"

	adminUserID   = "admin001"
	adminName     = "관리자"
	adminPassword = "Admin123!"
)

// accessPolicy is mounted into the container so the gate can be exercised
// on paths that have no handler behind them.
const accessPolicy = `default: permitAll
rules:
  - pattern: /admin/**
    require: hasAnyRole
    roles: [ROLE_ADMIN]
  - pattern: /html/user/**
    require: authenticated
`

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAuthContainer starts the auth service in a container and returns the base URL.
func setupAuthContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"AUTH_DATABASE_FILE":      "/data/auth.db",
			"AUTH_PEPPER_FILE":        "/data/pepper",
			"AUTH_EMAIL_KEY":          "e2e-email-key",
			"AUTH_SESSION_SECRET":     "e2e-session-secret-0123456789abcdef",
			"AUTH_ACCESS_POLICY_FILE": "/etc/userauth/policy.yaml",
			"AUTH_ADMIN_USER_ID":      adminUserID,
			"AUTH_ADMIN_PASSWORD":     adminPassword,
			"AUTH_ADMIN_NAME":         adminName,
			"ENV":                     "dev",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
		},
		Files: []testcontainers.ContainerFile{{
			Reader:            strings.NewReader(accessPolicy),
			ContainerFilePath: "/etc/userauth/policy.yaml",
			FileMode:          0o644,
		}},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser signs up a ROLE_USER account and asserts it succeeded.
func registerUser(t *testing.T, client *authsdk.SDKClient, userID, password string) {
	t.Helper()

	res, err := client.Register(t.Context(), authsdk.RegisterRequest{
		UserID:   userID,
		UserName: "테스터",
		Password: password,
		Email:    userID + "@example.com",
		Addr1:    "서울특별시",
		Addr2:    "강남구 테헤란로 1",
	})
	require.NoError(t, err)
	require.Equal(t, authsdk.ResultSuccess, res.Result, res.Msg)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
