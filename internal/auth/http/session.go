package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"github.com/aussiebroadwan/userauth/pkg/sessionx"
)

// SessionStore keeps the logged in identity between requests.
// *sessionx.Manager satisfies it.
type SessionStore interface {
	Load(r *http.Request) (sessionx.Identity, bool)
	Save(w http.ResponseWriter, r *http.Request, id sessionx.Identity) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// PrincipalToSessionIdentity is the only place a principal is copied into
// session state.
func PrincipalToSessionIdentity(p domain.Principal) sessionx.Identity {
	return sessionx.Identity{
		UserID:   p.UserID,
		UserName: p.UserName,
		Roles:    p.Roles,
	}
}

// SessionSubject resolves the gate's subject from the session cookie.
func SessionSubject(sessions SessionStore) httpx.SubjectResolver {
	return func(r *http.Request) (httpx.Subject, bool) {
		id, ok := sessions.Load(r)
		if !ok {
			return httpx.Subject{}, false
		}
		return httpx.Subject{UserID: id.UserID, Roles: domain.ParseRoles(id.Roles)}, true
	}
}

type principalKey struct{}

// withPrincipal hands an authenticated principal to the handler a login
// is forwarded to.
func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok && p.UserID != ""
}
