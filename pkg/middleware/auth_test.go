package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/authenticating"
	"github.com/rodrigohacking/plinhub/internal/usecases/authenticating/mocks"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserEmail: "ana@plin.com.br", UserRoleID: RoleClient}

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectClaims   bool
	}{
		{
			name:           "healthcheck é público",
			path:           "/healthcheck",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sem header",
			path:           "/v1/companies/1/deals",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "sem prefixo Bearer",
			path:           "/v1/companies/1/deals",
			header:         "Token abc",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/companies/1/deals",
			header: "Bearer expired",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/v1/companies/1/deals",
			header: "Bearer valid",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valid").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
			expectClaims:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var received *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received, _ = r.Context().Value(ContextKeyUser).(*domain.Claims)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectClaims {
				assert.Equal(t, claims, received)
			} else {
				assert.Nil(t, received)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		claims   *domain.Claims
		expected int
	}{
		{name: "administrador", claims: &domain.Claims{UserRoleID: RoleAdmin}, expected: http.StatusNoContent},
		{name: "cliente", claims: &domain.Claims{UserRoleID: RoleClient}, expected: http.StatusForbidden},
		{name: "sem claims", expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/pipefy/test", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
