package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const pipefyTokenHeader = "X-Pipefy-Token"

// PipefyTestRequest é o corpo do teste de configuração feito pela tela de administração
type PipefyTestRequest struct {
	CompanyID  string             `json:"companyId"`
	PipeID     string             `json:"pipeId"`
	Token      string             `json:"token"`
	Config     domain.PhaseConfig `json:"config"`
	SearchTerm string             `json:"searchTerm"`
}

// TestPipefyConfig executa a busca completa com uma configuração ainda não salva
func TestPipefyConfig(service dealing.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TestPipefyConfig")

		var request PipefyTestRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.PipeID = strings.TrimSpace(request.PipeID)
		request.Token = strings.TrimSpace(request.Token)
		if request.PipeID == "" || request.Token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "pipeId e token são obrigatórios", nil)
			return
		}

		result, err := service.FetchDeals(r.Context(), dealing.FetchDealsParams{
			CompanyID:  request.CompanyID,
			PipeID:     request.PipeID,
			Token:      request.Token,
			Config:     request.Config,
			SearchTerm: request.SearchTerm,
		})
		if err != nil {
			logrus.WithError(err).WithField("pipe_id", request.PipeID).Error("Erro ao testar configuração do Pipefy")
			writeDealError(w, err, "Erro ao testar configuração do Pipefy")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// GetPipeDetails lista fases, campos e etiquetas do pipe; o token vem no header X-Pipefy-Token
func GetPipeDetails(service dealing.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pipeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		token := strings.TrimSpace(r.Header.Get(pipefyTokenHeader))
		if pipeID == "" || token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pipe e header X-Pipefy-Token são obrigatórios", nil)
			return
		}

		details, err := service.GetPipeDetails(r.Context(), pipeID, token)
		if err != nil {
			logrus.WithError(err).WithField("pipe_id", pipeID).Error("Erro ao buscar detalhes do pipe")
			writeDealError(w, err, "Erro ao buscar detalhes do pipe")
			return
		}

		writeJSON(w, http.StatusOK, details)
	})
}
