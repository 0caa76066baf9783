package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrLoginFailed is returned by Login when the ID or password is wrong.
var ErrLoginFailed = errors.New("authsdk: login failed")

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int               `json:"-"`
	Code        string            `json:"error"`
	Description string            `json:"error_description"`
	Fields      map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// IsUnauthorized reports whether err is a 401 from the access gate.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 from the access gate.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse builds an APIError from an enveloped error body. Bodies
// that are not envelopes still produce an error carrying the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: http.StatusText(resp.StatusCode)}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Data) == 0 {
		return apiErr
	}
	_ = json.Unmarshal(env.Data, apiErr)
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}
