package authsdk

import (
	"context"
	"io"
	"net/http"
)

// Session is a logged in user. It holds the session cookie in its own jar.
type Session struct {
	client *SDKClient
	http   *http.Client
	userID string
}

// UserID is the ID the session logged in with.
func (s *Session) UserID() string { return s.userID }

// LoginInfo returns the identity the server keeps for this session. All
// fields are empty once the session has ended.
func (s *Session) LoginInfo(ctx context.Context) (*LoginInfo, error) {
	resp, err := s.client.postForm(ctx, s.http, "/user/v1/loginInfo", nil)
	if err != nil {
		return nil, err
	}

	var info LoginInfo
	if err := decodeEnvelope(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UserInfo returns the logged in user's profile.
func (s *Session) UserInfo(ctx context.Context) (*UserInfo, error) {
	resp, err := s.client.postForm(ctx, s.http, "/user/v1/userInfo", nil)
	if err != nil {
		return nil, err
	}

	var info UserInfo
	if err := decodeEnvelope(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Do sends a request with the session cookie to a path guarded by the
// access policy. It returns *APIError for any status other than 2xx.
func (s *Session) Do(ctx context.Context, method, path string) (*http.Response, error) {
	resp, err := s.client.doRequest(ctx, s.http, method, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return nil, parseErrorResponse(resp, body)
	}
	return resp, nil
}

// Logout ends the session on the server and drops the cookie.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.postForm(ctx, s.http, "/user/v1/logout", nil)
	if err != nil {
		return err
	}

	var msg MsgResponse
	return decodeEnvelope(resp, &msg)
}
