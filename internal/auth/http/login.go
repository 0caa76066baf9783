package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/internal/auth/service"
	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

const (
	msgLoginFail = "아이디, 패스워드가 일치하지 않습니다."
	msgLoginOK   = "님 로그인이 성공하였습니다."
)

// Authenticator checks a user ID and password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, userID, password string) (domain.Principal, error)
}

type LoginHandler struct {
	Auth     Authenticator
	Sessions SessionStore
}

// HandleProc godoc
//
//	@Summary		Log in
//	@Description	Checks the credentials and forwards to loginSuccess or loginFail.
//	@Tags			Login
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			userId		formData	string								true	"User ID"
//	@Param			password	formData	string								true	"Password"
//	@Success		200			{object}	httpx.Envelope{data=MsgResponse}	"result 1 on success, 0 on bad credentials"
//	@Failure		500			{object}	httpx.Envelope{data=httpx.ErrorBody}
//	@Router			/login/v1/loginProc [post].
func (h *LoginHandler) HandleProc(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.HandleFail(w, r)
		return
	}

	p, err := h.Auth.Authenticate(ctx, strings.TrimSpace(r.PostFormValue("userId")), r.PostFormValue("password"))
	switch {
	case errors.Is(err, service.ErrBadCredentials):
		h.HandleFail(w, r)
		return
	case err != nil:
		slogx.FromContext(ctx).Error("login lookup failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "login unavailable")
		return
	}

	h.HandleSuccess(w, r.WithContext(withPrincipal(ctx, p)))
}

// HandleSuccess godoc
//
//	@Summary		Login succeeded
//	@Description	Target of a successful loginProc. Stores the identity in the session.
//	@Description	Called without an authenticated principal it answers like loginFail.
//	@Tags			Login
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=MsgResponse}
//	@Router			/login/v1/loginSuccess [post].
func (h *LoginHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principalFromContext(ctx)
	if !ok {
		h.HandleFail(w, r)
		return
	}

	if err := h.Sessions.Save(w, r, PrincipalToSessionIdentity(p)); err != nil {
		slogx.FromContext(ctx).Error("failed to save session", "user_id", p.UserID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "failed to start session")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, MsgResponse{Result: 1, Msg: p.UserName + msgLoginOK})
}

// HandleFail godoc
//
//	@Summary	Login failed
//	@Tags		Login
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=MsgResponse}
//	@Router		/login/v1/loginFail [post].
func (h *LoginHandler) HandleFail(w http.ResponseWriter, r *http.Request) {
	httpx.WriteEnvelope(w, http.StatusOK, MsgResponse{Result: 0, Msg: msgLoginFail})
}

// HandleInfo godoc
//
//	@Summary		Session identity
//	@Description	Returns the identity of the current session, empty strings when nobody is logged in.
//	@Tags			Login
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=LoginInfoResponse}
//	@Router			/login/v1/loginInfo [post]
//	@Router			/user/v1/loginInfo [post].
func (h *LoginHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	id, _ := h.Sessions.Load(r)
	httpx.WriteEnvelope(w, http.StatusOK, LoginInfoResponse{
		UserID:   id.UserID,
		UserName: id.UserName,
		Roles:    id.Roles,
	})
}
