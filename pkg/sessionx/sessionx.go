// Package sessionx keeps the logged-in identity in a signed and encrypted
// cookie session backed by gorilla/sessions.
package sessionx

import (
	"crypto/sha512"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// Session attribute keys.
const (
	KeyUserID   = "SS_USER_ID"
	KeyUserName = "SS_USER_NAME"
	KeyUserRole = "SS_USER_ROLE"
)

const DefaultCookieName = "USERAUTH_SESSION"

var ErrNoSecret = errors.New("sessionx: empty session secret")

// Identity is what a session remembers about its user.
type Identity struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Roles    string `json:"roles"`
}

// IsZero reports whether no user is logged in.
func (i Identity) IsZero() bool { return i.UserID == "" }

type Config struct {
	CookieName string
	Secret     string
	MaxAge     int  // seconds; 0 means a browser-session cookie
	Secure     bool // set for anything served over https
}

// Manager loads and stores Identity values on requests.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// New builds a Manager. The secret is stretched into an HMAC key and an
// AES-256 key so one configured value is enough.
func New(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}

	sum := sha512.Sum512([]byte(cfg.Secret))
	store := sessions.NewCookieStore(sum[:32], sum[32:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(cfg.MaxAge)

	return &Manager{store: store, name: name}, nil
}

// Load returns the identity stored in r's session. A cookie that fails to
// decode (tampered, or signed with an old secret) reads as anonymous.
func (m *Manager) Load(r *http.Request) (Identity, bool) {
	s, err := m.store.Get(r, m.name)
	if err != nil && !isDecodeError(err) {
		return Identity{}, false
	}

	id := Identity{
		UserID:   stringValue(s.Values[KeyUserID]),
		UserName: stringValue(s.Values[KeyUserName]),
		Roles:    stringValue(s.Values[KeyUserRole]),
	}
	return id, !id.IsZero()
}

// Save writes id into the session and sets the cookie on w.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, id Identity) error {
	s, err := m.store.Get(r, m.name)
	if err != nil && !isDecodeError(err) {
		return err
	}

	s.Values[KeyUserID] = id.UserID
	s.Values[KeyUserName] = id.UserName
	s.Values[KeyUserRole] = id.Roles
	return s.Save(r, w)
}

// Clear removes the identity attributes and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.Get(r, m.name)
	if err != nil && !isDecodeError(err) {
		return err
	}

	delete(s.Values, KeyUserID)
	delete(s.Values, KeyUserName)
	delete(s.Values, KeyUserRole)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

func isDecodeError(err error) bool {
	var scErr securecookie.Error
	return errors.As(err, &scErr) && scErr.IsDecode()
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
