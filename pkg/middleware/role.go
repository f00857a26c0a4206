package middleware

import (
	"net/http"
	"slices"

	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/rodrigohacking/plinhub/pkg/log"
)

// Roles do dashboard presentes no claim role_id
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RoleMiddleware restringe a rota aos roles informados; depende das claims gravadas por AuthMiddleware
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_email": claims.UserEmail,
					"user_role":  claims.UserRoleID,
					"path":       r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly libera apenas administradores: teste de configuração do Pipefy e jobs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// AllRoles libera qualquer usuário autenticado; o acesso por empresa é verificado no handler
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleSupervisor, RoleClient)
}
