package app

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		DatabaseDriver:      "sqlite",
		DatabaseFile:        filepath.Join(dir, "auth.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		EmailKey:            "app-test-email-key",
		SessionSecret:       "app-test-session-secret",
		SessionMaxAge:       600,
		AdminUserID:         "root",
		AdminPassword:       "R00tPass!",
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: 0,
	}
}

func TestNewWiresAdminLogin(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	post := func(path string, form url.Values) (int, httpx.Envelope) {
		resp, err := client.PostForm(srv.URL+path, form)
		require.NoError(t, err)
		defer resp.Body.Close()

		var env httpx.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		return resp.StatusCode, env
	}

	code, _ := post("/admin/v1/ping", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	_, env := post("/login/v1/loginProc", url.Values{"userId": {"root"}, "password": {"R00tPass!"}})
	require.EqualValues(t, 1, env.Data.(map[string]any)["result"])

	_, env = post("/login/v1/loginInfo", nil)
	require.Equal(t, "ROLE_ADMIN,ROLE_USER", env.Data.(map[string]any)["roles"])
}

func TestNewRejectsBadPolicyFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.AccessPolicyFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(cfg)
	require.Error(t, err)
}

func TestBuildVersionReachesHealth(t *testing.T) {
	prev := BuildVersion
	BuildVersion = "v9.9.9-test"
	t.Cleanup(func() { BuildVersion = prev })

	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.router)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health struct {
		Version string `json:"version"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "v9.9.9-test", health.Version)
}
