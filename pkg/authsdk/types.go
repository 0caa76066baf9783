package authsdk

import "encoding/json"

// Envelope is the wrapper around every JSON response.
type Envelope struct {
	Status        int             `json:"status"`
	StatusMessage string          `json:"statusMessage"`
	Data          json.RawMessage `json:"data"`
}

// Registration outcomes reported in MsgResponse.Result.
const (
	ResultFailure     = 0
	ResultSuccess     = 1
	ResultDuplicateID = 2
)

type MsgResponse struct {
	Result int    `json:"result"`
	Msg    string `json:"msg"`
}

type LoginInfo struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Roles    string `json:"roles"`
}

type UserInfo struct {
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

type RegisterRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Addr1    string `json:"addr1"`
	Addr2    string `json:"addr2"`
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
