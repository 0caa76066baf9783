package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/internal/auth/service"
	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

const msgLogout = "로그아웃 되었습니다."

var registerMessages = map[domain.ResultCode]string{
	domain.ResultSuccess:     "회원가입되었습니다.",
	domain.ResultDuplicateID: "이미 가입된 아이디입니다.",
	domain.ResultFailure:     "오류로 인해 회원가입이 실패하였습니다.",
}

// Directory is the user directory as seen by the HTTP layer.
type Directory interface {
	CheckIDExists(ctx context.Context, userID string) (bool, error)
	Register(ctx context.Context, reg domain.Registration) domain.ResultCode
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
}

type UserHandler struct {
	Directory Directory
	Sessions  SessionStore

	validate *validator.Validate
}

func NewUserHandler(dir Directory, sessions SessionStore) *UserHandler {
	return &UserHandler{Directory: dir, Sessions: sessions, validate: newValidator()}
}

// HandleUserInfo godoc
//
//	@Summary		Current user's profile
//	@Description	Returns the profile of the logged in user with the email decrypted.
//	@Tags			User
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=UserInfoResponse}
//	@Failure		404	{object}	httpx.Envelope{data=httpx.ErrorBody}	"no session user or user no longer exists"
//	@Failure		500	{object}	httpx.Envelope{data=httpx.ErrorBody}
//	@Router			/user/v1/userInfo [post].
func (h *UserHandler) HandleUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.Sessions.Load(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no user in session")
		return
	}

	p, err := h.Directory.GetProfile(ctx, id.UserID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "user not found")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("failed to load profile", "user_id", id.UserID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "failed to load profile")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, UserInfoResponse{
		UserID:   p.UserID,
		UserName: p.UserName,
		Email:    p.Email,
		Addr1:    p.Addr1,
		Addr2:    p.Addr2,
		Roles:    p.Roles,
		RegID:    p.RegID,
		RegDt:    p.RegDt,
		ChgID:    p.ChgID,
		ChgDt:    p.ChgDt,
	})
}

// HandleLogout godoc
//
//	@Summary	Log out
//	@Tags		User
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=MsgResponse}
//	@Router		/user/v1/logout [post].
func (h *UserHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.Sessions.Load(r); ok {
		slogx.FromContext(r.Context()).Info("logout", "user_id", id.UserID)
	}
	h.HandleLogoutSuccess(w, r)
}

// HandleLogoutSuccess godoc
//
//	@Summary		Logout finished
//	@Description	Removes the session identity and expires the session cookie.
//	@Tags			User
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=MsgResponse}
//	@Router			/user/v1/logoutSuccess [post].
func (h *UserHandler) HandleLogoutSuccess(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		slogx.FromContext(r.Context()).Error("failed to clear session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "failed to end session")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, MsgResponse{Result: 1, Msg: msgLogout})
}

// HandleIDExists godoc
//
//	@Summary	Check whether a user ID is taken
//	@Tags		User
//	@Accept		json
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		request	body		UserIDRequest	true	"userId"
//	@Success	200		{object}	httpx.Envelope{data=ExistsResponse}
//	@Failure	400		{object}	httpx.Envelope{data=httpx.ErrorBody}
//	@Failure	500		{object}	httpx.Envelope{data=httpx.ErrorBody}
//	@Router		/user/v1/getUserIdExists [post].
func (h *UserHandler) HandleIDExists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UserIDRequest
	err := bind(w, r, &req, func(form url.Values) {
		req.UserID = form.Get("userId")
	})
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	exists, err := h.Directory.CheckIDExists(ctx, strings.TrimSpace(req.UserID))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to check user id", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "failed to check user id")
		return
	}

	resp := ExistsResponse{ExistsYn: "N"}
	if exists {
		resp.ExistsYn = "Y"
	}
	httpx.WriteEnvelope(w, http.StatusOK, resp)
}

// HandleRegister godoc
//
//	@Summary		Register a user
//	@Description	Creates a ROLE_USER account. result is 1 on success, 2 when the ID is taken and 0 on failure.
//	@Tags			User
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration form"
//	@Success		200		{object}	httpx.Envelope{data=MsgResponse}
//	@Failure		400		{object}	httpx.Envelope{data=httpx.ErrorBody}	"field errors"
//	@Router			/user/v1/insertUserInfo [post].
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	err := bind(w, r, &req, func(form url.Values) {
		req = RegisterRequest{
			UserID:   form.Get("userId"),
			UserName: form.Get("userName"),
			Password: form.Get("password"),
			Email:    form.Get("email"),
			Addr1:    form.Get("addr1"),
			Addr2:    form.Get("addr2"),
		}
	})
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	reg := domain.Registration{
		UserID:   req.UserID,
		UserName: req.UserName,
		Password: req.Password,
		Email:    req.Email,
		Addr1:    req.Addr1,
		Addr2:    req.Addr2,
	}.Normalize()

	// Blank fields count as missing.
	req.UserID, req.UserName, req.Email, req.Addr1, req.Addr2 = reg.UserID, reg.UserName, reg.Email, reg.Addr1, reg.Addr2
	if strings.TrimSpace(req.Password) == "" {
		req.Password = ""
	}

	if err := h.validate.StructCtx(ctx, req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, httpx.ErrorBody{
			Error:       "invalid_request",
			Description: "validation failed",
			Fields:      fieldErrors(err),
		})
		return
	}

	code := h.Directory.Register(ctx, reg)
	httpx.WriteEnvelope(w, http.StatusOK, MsgResponse{Result: int(code), Msg: registerMessages[code]})
}
