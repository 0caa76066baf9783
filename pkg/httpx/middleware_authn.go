package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

// SubjectResolver extracts the caller from a request. ok is false for
// anonymous callers.
type SubjectResolver func(r *http.Request) (s Subject, ok bool)

// AttachSubject resolves the caller once and stores it in the request
// context. Anonymous requests pass through untouched.
func AttachSubject(resolve SubjectResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := resolve(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSubject(r.Context(), s)
			ctx = slogx.WithUserID(ctx, s.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated rejects requests without a subject with 401.
func RequireAuthenticated() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SubjectFromContext(r.Context()); !ok {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "login required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
