package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyRoles  ctxKey = "roles"
)

// Subject is the caller as seen by the authorization middleware.
type Subject struct {
	UserID string
	Roles  []string
}

// WithSubject stores s in ctx for downstream handlers.
func WithSubject(ctx context.Context, s Subject) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, s.UserID)
	ctx = context.WithValue(ctx, CtxKeyRoles, s.Roles)
	return ctx
}

// SubjectFromContext returns the subject attached by Gate, if any.
func SubjectFromContext(ctx context.Context) (Subject, bool) {
	id, _ := ctx.Value(CtxKeyUserID).(string)
	if id == "" {
		return Subject{}, false
	}
	return Subject{UserID: id, Roles: rolesFromCtx(ctx)}, true
}

func rolesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyRoles).([]string); ok {
		return v
	}
	return nil
}
