package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/rodrigohacking/plinhub/pkg/log"
	"github.com/rodrigohacking/plinhub/pkg/utils"
)

// GetCompanyDeals busca os negócios ao vivo no Pipefy com a configuração salva da empresa
func GetCompanyDeals(service dealing.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		if !authorizeCompany(w, r, companyID) {
			return
		}

		search := strings.TrimSpace(r.URL.Query().Get("search"))

		result, err := service.FetchCompanyDeals(r.Context(), companyID, search)
		if err != nil {
			log.ForContext(r.Context()).WithCompany(companyID).WithError(err).Error("Erro ao buscar negócios no Pipefy")
			writeDealError(w, err, "Erro ao buscar negócios")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// GetStoredDeals lista os negócios do último snapshot salvo
func GetStoredDeals(service dealing.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !authorizeCompany(w, r, companyID) {
			return
		}

		filters, ok := parseDealFilters(w, r)
		if !ok {
			return
		}

		deals, err := service.ListStoredDeals(companyID, filters)
		if err != nil {
			log.ForContext(r.Context()).WithCompany(companyID).WithError(err).Error("Erro ao listar negócios salvos")
			writeDealError(w, err, "Erro ao listar negócios")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"deals": deals})
	})
}

func GetDealMetrics(service dealing.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !authorizeCompany(w, r, companyID) {
			return
		}

		filters, ok := parseDealFilters(w, r)
		if !ok {
			return
		}

		metrics, err := service.GetMetrics(companyID, filters)
		if err != nil {
			log.ForContext(r.Context()).WithCompany(companyID).WithError(err).Error("Erro ao calcular métricas")
			writeDealError(w, err, "Erro ao calcular métricas")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

func parseDealFilters(w http.ResponseWriter, r *http.Request) (domain.DealFilters, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return domain.DealFilters{}, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return domain.DealFilters{}, false
	}

	return domain.DealFilters{StartDate: startDate, EndDate: endDate}, true
}
