package authsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the user auth service.
// It provides access to public operations and can create logged in Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login checks the credentials and returns a Session holding the session
// cookie. Wrong credentials yield ErrLoginFailed.
func (c *SDKClient) Login(ctx context.Context, userID, password string) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	hc := &http.Client{
		Transport: c.HTTPClient.Transport,
		Timeout:   c.HTTPClient.Timeout,
		Jar:       jar,
	}

	resp, err := c.postForm(ctx, hc, "/login/v1/loginProc", url.Values{
		"userId":   {userID},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}

	var msg MsgResponse
	if err := decodeEnvelope(resp, &msg); err != nil {
		return nil, err
	}
	if msg.Result != ResultSuccess {
		return nil, fmt.Errorf("%w: %s", ErrLoginFailed, msg.Msg)
	}

	return &Session{client: c, http: hc, userID: userID}, nil
}

// CheckUserIDExists reports whether userID is already registered.
func (c *SDKClient) CheckUserIDExists(ctx context.Context, userID string) (bool, error) {
	resp, err := c.postJSON(ctx, c.HTTPClient, "/user/v1/getUserIdExists", map[string]string{"userId": userID})
	if err != nil {
		return false, err
	}

	var out struct {
		ExistsYn string `json:"existsYn"`
	}
	if err := decodeEnvelope(resp, &out); err != nil {
		return false, err
	}
	return out.ExistsYn == "Y", nil
}

// Register signs up a new user. The outcome is in MsgResponse.Result;
// validation failures come back as *APIError with Fields set.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*MsgResponse, error) {
	resp, err := c.postJSON(ctx, c.HTTPClient, "/user/v1/insertUserInfo", req)
	if err != nil {
		return nil, err
	}

	var msg MsgResponse
	if err := decodeEnvelope(resp, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
