package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body shape shared by every JSON endpoint.
type Envelope struct {
	Status        int    `json:"status"`
	StatusMessage string `json:"statusMessage"`
	Data          any    `json:"data"`
}

// ErrorBody is the envelope payload for rejected requests.
type ErrorBody struct {
	Error       string            `json:"error"`
	Description string            `json:"error_description,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteEnvelope wraps data in an Envelope stamped with code.
func WriteEnvelope(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{
		Status:        code,
		StatusMessage: StatusSeries(code),
		Data:          data,
	})
}

// WriteError writes an enveloped ErrorBody.
func WriteError(w http.ResponseWriter, code int, errCode, description string) {
	WriteEnvelope(w, code, ErrorBody{Error: errCode, Description: description})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// StatusSeries names the class of an HTTP status code.
func StatusSeries(code int) string {
	switch code / 100 {
	case 1:
		return "INFORMATIONAL"
	case 2:
		return "SUCCESSFUL"
	case 3:
		return "REDIRECTION"
	case 4:
		return "CLIENT_ERROR"
	case 5:
		return "SERVER_ERROR"
	default:
		return "UNKNOWN"
	}
}
