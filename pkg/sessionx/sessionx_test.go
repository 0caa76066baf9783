package sessionx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/userauth/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, secret string) *sessionx.Manager {
	t.Helper()
	m, err := sessionx.New(sessionx.Config{Secret: secret, MaxAge: 3600})
	require.NoError(t, err)
	return m
}

// carry copies the Set-Cookie headers from rec onto a fresh request.
func carry(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := sessionx.New(sessionx.Config{})
	require.ErrorIs(t, err, sessionx.ErrNoSecret)
}

func TestLoadWithoutCookieIsAnonymous(t *testing.T) {
	t.Parallel()
	m := newManager(t, "secret")

	id, ok := m.Load(httptest.NewRequest(http.MethodPost, "/", nil))
	require.False(t, ok)
	require.True(t, id.IsZero())
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()
	m := newManager(t, "secret")

	want := sessionx.Identity{UserID: "alice123", UserName: "Alice", Roles: "ROLE_USER"}

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), want))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, sessionx.DefaultCookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	got, ok := m.Load(carry(rec))
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()
	m := newManager(t, "secret")

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil),
		sessionx.Identity{UserID: "alice123", UserName: "Alice", Roles: "ROLE_USER"}))

	clearRec := httptest.NewRecorder()
	require.NoError(t, m.Clear(clearRec, carry(rec)))

	cookies := clearRec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Less(t, cookies[0].MaxAge, 0)

	// The cleared cookie carries no identity either.
	_, ok := m.Load(carry(clearRec))
	require.False(t, ok)
}

func TestCookieFromOtherSecretIsAnonymous(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, newManager(t, "secret-one").Save(rec, httptest.NewRequest(http.MethodPost, "/", nil),
		sessionx.Identity{UserID: "alice123"}))

	id, ok := newManager(t, "secret-two").Load(carry(rec))
	require.False(t, ok)
	require.True(t, id.IsZero())
}
