package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

// RequireAnyRole the caller must be logged in and hold at least one of the
// provided roles. Anonymous callers get 401, others 403.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, role := range required {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SubjectFromContext(r.Context()); !ok {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "login required")
				return
			}

			for _, have := range rolesFromCtx(r.Context()) {
				if _, ok := want[have]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			slogx.FromContext(r.Context()).Info("access denied", "required_roles", required)
			WriteError(w, http.StatusForbidden, "forbidden", "insufficient role")
		})
	}
}

// RejectAll rejects every request, 401 for anonymous callers and 403 otherwise.
func RejectAll() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SubjectFromContext(r.Context()); !ok {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "login required")
				return
			}
			WriteError(w, http.StatusForbidden, "forbidden", "access denied")
		})
	}
}
