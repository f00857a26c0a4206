package dealing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy"
	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrCompanyIDRequired = errors.New("company ID is required")
	ErrInvalidPeriod     = errors.New("start date must not be after end date")

	// Erros de cadastro
	ErrCompanyNotFound     = errors.New("company not found")
	ErrPipefyNotConfigured = errors.New("company has no pipefy pipe or token configured")

	// Erros de serviços externos
	ErrFetchDeals       = errors.New("error fetching deals from pipefy")
	ErrFetchPipeDetails = errors.New("error fetching pipe details from pipefy")
	ErrPartialFetch     = errors.New("pipefy fetch incomplete, stored deals kept")

	// Erros de banco de dados
	ErrFetchCompany = errors.New("error fetching company from database")
	ErrPersistDeals = errors.New("error persisting deals")
	ErrListDeals    = errors.New("error listing stored deals")
)

// DealError carrega o código da API e, quando houver, o erro de origem do Pipefy ou do banco
type DealError struct {
	Err       error
	Code      string
	CompanyID string
	Details   string
	Cause     error
}

func (e *DealError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap permite errors.Is/As tanto no erro base quanto na causa
func (e *DealError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewDealError(err error, code string, companyID string, details string) *DealError {
	return &DealError{
		Err:       err,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}

// wrapPipefyError classifica um erro da integração no código de API correspondente
func wrapPipefyError(base error, companyID string, cause error) *DealError {
	dealErr := NewDealError(base, pipefyErrorCode(cause), companyID, cause.Error())
	dealErr.Cause = cause
	return dealErr
}

func pipefyErrorCode(err error) string {
	var (
		notFound *pipefyclient.NotFoundError
		gqlErr   *pipefyclient.GraphQLError
		connErr  *pipefyclient.ConnectionError
	)

	switch {
	case errors.Is(err, pipefy.ErrPipeIDRequired), errors.Is(err, pipefy.ErrTokenRequired):
		return apiErrors.ErrMissingRequiredData
	case pipefyclient.IsRateLimited(err):
		return apiErrors.ErrPipefyRateLimited
	case errors.As(err, &notFound):
		return apiErrors.ErrPipefyNotFound
	case errors.As(err, &gqlErr):
		return apiErrors.ErrPipefyQuery
	case errors.As(err, &connErr):
		if connErr.StatusCode == http.StatusUnauthorized || connErr.StatusCode == http.StatusForbidden {
			return apiErrors.ErrPipefyUnauthorized
		}
		if connErr.StatusCode == 0 {
			return apiErrors.ErrCommunication
		}
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrExternalService
	}
}
