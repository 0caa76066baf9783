package domain

import "strings"

// ResultCode is the outcome of a registration attempt.
type ResultCode int

const (
	ResultFailure     ResultCode = 0
	ResultSuccess     ResultCode = 1
	ResultDuplicateID ResultCode = 2
)

func (c ResultCode) String() string {
	switch c {
	case ResultSuccess:
		return "success"
	case ResultDuplicateID:
		return "duplicate_id"
	default:
		return "failure"
	}
}

// Registration carries a sign-up request with plaintext password and email.
type Registration struct {
	UserID   string
	UserName string
	Password string
	Email    string
	Addr1    string
	Addr2    string
	Roles    string // empty means ROLE_USER
}

// Normalize trims every field. The password is left untouched.
func (r Registration) Normalize() Registration {
	return Registration{
		UserID:   strings.TrimSpace(r.UserID),
		UserName: strings.TrimSpace(r.UserName),
		Password: r.Password,
		Email:    strings.TrimSpace(r.Email),
		Addr1:    strings.TrimSpace(r.Addr1),
		Addr2:    strings.TrimSpace(r.Addr2),
		Roles:    strings.TrimSpace(r.Roles),
	}
}
