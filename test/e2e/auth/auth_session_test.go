//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/userauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginLogout walks a new account through its whole session.
func TestRegisterLoginLogout(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	exists, err := client.CheckUserIDExists(ctx, "alice123")
	require.NoError(t, err)
	require.False(t, exists)

	registerUser(t, client, "alice123", "Secr3t!")

	exists, err = client.CheckUserIDExists(ctx, "alice123")
	require.NoError(t, err)
	require.True(t, exists)

	session, err := client.Login(ctx, "alice123", "Secr3t!")
	require.NoError(t, err)

	info, err := session.LoginInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice123", info.UserID)
	require.Equal(t, "ROLE_USER", info.Roles)

	profile, err := session.UserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice123@example.com", profile.Email)
	require.Equal(t, "alice123", profile.RegID)

	require.NoError(t, session.Logout(ctx))

	info, err = session.LoginInfo(ctx)
	require.NoError(t, err)
	require.Empty(t, info.UserID)
}

// TestDuplicateRegistration verifies a taken ID is reported, not overwritten.
func TestDuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	registerUser(t, client, "bob12345", "first")

	res, err := client.Register(t.Context(), authsdk.RegisterRequest{
		UserID: "bob12345", UserName: "Bob", Password: "second",
		Email: "b@x.com", Addr1: "Seoul", Addr2: "1",
	})
	require.NoError(t, err)
	require.Equal(t, authsdk.ResultDuplicateID, res.Result)

	_, err = client.Login(t.Context(), "bob12345", "second")
	require.ErrorIs(t, err, authsdk.ErrLoginFailed)
}

// TestInvalidCredentials verifies that login with a wrong password is rejected.
func TestInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	_, err := client.Login(t.Context(), adminUserID, "wrong-password")
	require.ErrorIs(t, err, authsdk.ErrLoginFailed)

	_, err = client.Login(t.Context(), "nobody99", adminPassword)
	require.ErrorIs(t, err, authsdk.ErrLoginFailed)
}

// TestAccessGate checks anonymous, ROLE_USER and ROLE_ADMIN callers against
// the mounted policy.
func TestAccessGate(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	anon, err := http.Get(baseURL + "/admin/dashboard")
	require.NoError(t, err)
	_ = anon.Body.Close()
	require.Equal(t, http.StatusUnauthorized, anon.StatusCode)

	registerUser(t, client, "carol123", "Secr3t!")
	user, err := client.Login(ctx, "carol123", "Secr3t!")
	require.NoError(t, err)

	_, err = user.Do(ctx, http.MethodGet, "/admin/dashboard")
	require.True(t, authsdk.IsForbidden(err), "got %v", err)

	// Authenticated users pass the gate and reach the mux, which has no route.
	_, err = user.Do(ctx, http.MethodGet, "/html/user/page")
	require.True(t, authsdk.IsNotFound(err), "got %v", err)

	admin, err := client.Login(ctx, adminUserID, adminPassword)
	require.NoError(t, err)

	_, err = admin.Do(ctx, http.MethodGet, "/admin/dashboard")
	require.True(t, authsdk.IsNotFound(err), "got %v", err)
}
