package service

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidRequest = errors.New("invalid_request")
)
