package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSubjectFromContextEmpty(t *testing.T) {
	_, ok := SubjectFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}

func TestWriteEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteEnvelope(rec, http.StatusOK, map[string]int{"result": 1})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"status":200,"statusMessage":"SUCCESSFUL","data":{"result":1}}`, strings.TrimSpace(rec.Body.String()))
}

func TestStatusSeries(t *testing.T) {
	require.Equal(t, "SUCCESSFUL", StatusSeries(http.StatusCreated))
	require.Equal(t, "REDIRECTION", StatusSeries(http.StatusFound))
	require.Equal(t, "CLIENT_ERROR", StatusSeries(http.StatusNotFound))
	require.Equal(t, "SERVER_ERROR", StatusSeries(http.StatusInternalServerError))
	require.Equal(t, "UNKNOWN", StatusSeries(0))
}
