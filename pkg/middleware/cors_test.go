package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Cors([]string{" https://hub.plinseguros.com.br/ ", ""})(next)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"origem liberada", http.MethodGet, "https://hub.plinseguros.com.br", http.StatusOK, "https://hub.plinseguros.com.br"},
		{"origem desconhecida", http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "https://hub.plinseguros.com.br", http.StatusNoContent, "https://hub.plinseguros.com.br"},
		{"sem origem", http.MethodGet, "", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/cron/status", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Origin", rec.Header().Get("Vary"))
		})
	}
}
