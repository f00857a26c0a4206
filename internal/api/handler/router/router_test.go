package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

func tag(name string, calls *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "handler")
		w.WriteHeader(http.StatusNoContent)
	})

	rt := New(WithRoutes(Route{
		Path:        "/v1/ping",
		Method:      http.MethodGet,
		Handler:     handler,
		Middlewares: []func(http.Handler) http.Handler{tag("first", &calls), tag("second", &calls)},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/healthcheck",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"rota inexistente", http.MethodGet, "/nada", http.StatusNotFound, apiErrors.ErrRouteNotFound},
		{"método errado", http.MethodPost, "/healthcheck", http.StatusMethodNotAllowed, apiErrors.ErrMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody))
		})
	}
}
