package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/rodrigohacking/plinhub/pkg/log"
	"github.com/rodrigohacking/plinhub/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeDealError converte o erro do caso de uso no erro padronizado da API
func writeDealError(w http.ResponseWriter, err error, message string) {
	var dealErr *dealing.DealError
	if errors.As(err, &dealErr) {
		details := map[string]any{"error_type": dealErr.Err.Error()}
		if dealErr.CompanyID != "" {
			details["company_id"] = dealErr.CompanyID
		}
		apiErrors.WriteError(w, dealErr.Code, dealErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// authorizeCompany garante que o usuário pode consultar a empresa; administradores acessam todas
func authorizeCompany(w http.ResponseWriter, r *http.Request, companyID string) bool {
	claims, ok := claimsFromRequest(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return false
	}

	if !claims.CanAccessCompany(companyID, middleware.RoleAdmin) {
		log.ForContext(r.Context()).WithCompany(companyID).WithField("user_email", claims.UserEmail).Warn("Acesso negado à empresa")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta empresa", nil)
		return false
	}

	return true
}
