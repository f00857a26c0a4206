package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing/mocks"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTestPipefyConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDealService(ctrl)

	service.EXPECT().
		FetchDeals(gomock.Any(), dealing.FetchDealsParams{
			PipeID:     "306",
			Token:      "secret",
			Config:     domain.PhaseConfig{WonPhase: "Fechado", ValueField: "Prêmio"},
			SearchTerm: "maria",
		}).
		Return(&domain.DealsResult{Deals: []*domain.Deal{}, Debug: domain.DealsDebug{PhasesFound: 5}}, nil)

	body := `{"pipeId":" 306 ","token":"secret","config":{"wonPhase":"Fechado","valueField":"Prêmio"},"searchTerm":"maria"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/pipefy/test", strings.NewReader(body))
	rec := serve(t, Pipefy(service), adminClaims, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"phasesFound":5`)
}

func TestTestPipefyConfig_Errors(t *testing.T) {
	tests := []struct {
		name         string
		claims       *domain.Claims
		body         string
		expectedCode string
	}{
		{name: "apenas administradores", claims: clientClaims, body: `{}`, expectedCode: apiErrors.ErrInsufficientPrivilege},
		{name: "corpo inválido", claims: adminClaims, body: `{`, expectedCode: apiErrors.ErrInvalidRequest},
		{name: "token ausente", claims: adminClaims, body: `{"pipeId":"306"}`, expectedCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDealService(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/v1/pipefy/test", strings.NewReader(tt.body))
			rec := serve(t, Pipefy(service), tt.claims, req)

			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
		})
	}
}

func TestGetPipeDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDealService(ctrl)

	service.EXPECT().
		GetPipeDetails(gomock.Any(), "306", "secret").
		Return(&pipefydomain.PipeDetails{
			Phases: []pipefydomain.Phase{{ID: "1", Name: "Ganho", CardsCount: 2}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/pipefy/pipes/306/details", nil)
	req.Header.Set(pipefyTokenHeader, "secret")
	rec := serve(t, Pipefy(service), adminClaims, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Ganho"`)
}

func TestGetPipeDetails_Errors(t *testing.T) {
	t.Run("header obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDealService(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/pipefy/pipes/306/details", nil)
		rec := serve(t, Pipefy(service), adminClaims, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token recusado pelo pipefy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDealService(ctrl)
		service.EXPECT().
			GetPipeDetails(gomock.Any(), "306", "bad").
			Return(nil, dealing.NewDealError(dealing.ErrFetchPipeDetails, apiErrors.ErrPipefyUnauthorized, "", "Invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/v1/pipefy/pipes/306/details", nil)
		req.Header.Set(pipefyTokenHeader, "bad")
		rec := serve(t, Pipefy(service), adminClaims, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrPipefyUnauthorized, decodeError(t, rec).Code)
	})
}
