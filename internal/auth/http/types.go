package http

// MsgResponse reports the outcome of a login, logout or registration.
type MsgResponse struct {
	Result int    `json:"result"`
	Msg    string `json:"msg"`
}

// LoginInfoResponse is the identity held by the current session. Every
// field is empty for anonymous callers.
type LoginInfoResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Roles    string `json:"roles"`
}

// UserInfoResponse is the logged in user's profile.
type UserInfoResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Addr1    string `json:"addr1"`
	Addr2    string `json:"addr2"`
	Roles    string `json:"roles"`
	RegID    string `json:"regId"`
	RegDt    string `json:"regDt"`
	ChgID    string `json:"chgId"`
	ChgDt    string `json:"chgDt"`
}

// ExistsResponse answers an ID availability check with "Y" or "N".
type ExistsResponse struct {
	ExistsYn string `json:"existsYn"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	UserID   string `json:"userId" validate:"required,min=4,max=16"`
	UserName string `json:"userName" validate:"required,max=10"`
	Password string `json:"password" validate:"required,max=16"`
	Email    string `json:"email" validate:"required,email,max=30"`
	Addr1    string `json:"addr1" validate:"required,max=30"`
	Addr2    string `json:"addr2" validate:"required,max=100"`
}

// UserIDRequest carries a single user ID.
type UserIDRequest struct {
	UserID string `json:"userId"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Users    *int64 `json:"users,omitempty"`
}
