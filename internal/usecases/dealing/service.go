package dealing

import (
	"context"
	"strings"

	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy"
	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/infrastructure/repository"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// FetchDealsParams são as entradas de uma busca ao vivo no Pipefy
type FetchDealsParams struct {
	CompanyID  string
	PipeID     string
	Token      string
	Config     domain.PhaseConfig
	SearchTerm string
}

type DealService interface {
	// FetchDeals busca e classifica todos os cards do pipe
	FetchDeals(ctx context.Context, params FetchDealsParams) (*domain.DealsResult, error)

	// FetchCompanyDeals faz a busca ao vivo com o pipe, token e configuração salvos da empresa
	FetchCompanyDeals(ctx context.Context, companyID, searchTerm string) (*domain.DealsResult, error)

	// SyncCompanyDeals busca os negócios da empresa e substitui o snapshot salvo
	SyncCompanyDeals(ctx context.Context, company *domain.Company) (int, error)

	ListStoredDeals(companyID string, filters domain.DealFilters) ([]*domain.Deal, error)
	GetMetrics(companyID string, filters domain.DealFilters) (*domain.DealMetrics, error)
	GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error)
}

type Service struct {
	cfg               *config.Config
	pipefyService     pipefy.PipefyIntegrator
	companyRepository repository.CompanyRepository
	dealRepository    repository.DealRepository
	overrides         OverrideTable
}

func NewService(
	cfg *config.Config,
	pipefyService pipefy.PipefyIntegrator,
	companyRepository repository.CompanyRepository,
	dealRepository repository.DealRepository,
) DealService {
	overrides := OverrideTable(cfg.Pipefy.PhaseOverrides)
	if overrides == nil {
		defaults, err := config.ParsePhaseOverrides(config.DefaultPhaseOverrides)
		if err != nil {
			logrus.WithError(err).Error("deals: invalid default phase overrides")
		}
		overrides = OverrideTable(defaults)
	}

	return &Service{
		cfg:               cfg,
		pipefyService:     pipefyService,
		companyRepository: companyRepository,
		dealRepository:    dealRepository,
		overrides:         overrides,
	}
}

func (s *Service) FetchDeals(ctx context.Context, params FetchDealsParams) (*domain.DealsResult, error) {
	collection, err := s.pipefyService.FetchCards(ctx, params.PipeID, params.Token)
	if err != nil {
		return nil, wrapPipefyError(ErrFetchDeals, params.CompanyID, err)
	}

	classifier := NewClassifier(params.PipeID, params.Config, s.overrides)
	term := Normalize(strings.TrimSpace(params.SearchTerm))

	deals := make([]*domain.Deal, 0, len(collection.Cards))
	byStatus := make(map[domain.DealStatus]int)

	for i := range collection.Cards {
		deal := buildDeal(params.CompanyID, &collection.Cards[i], classifier, params.Config)
		if term != "" && !matchesSearch(deal, term) {
			continue
		}
		byStatus[deal.Status]++
		deals = append(deals, deal)
	}

	result := &domain.DealsResult{
		Deals: deals,
		Debug: domain.DealsDebug{
			PhasesFound:     collection.PhasesFound,
			TotalRaw:        collection.TotalRaw,
			FilteredCount:   len(deals),
			TruncatedPhases: collection.TruncatedPhases,
			FailedPhases:    collection.FailedPhases,
		},
	}

	logger := logrus.WithFields(logrus.Fields{
		"company_id":     params.CompanyID,
		"pipe_id":        params.PipeID,
		"phases_found":   result.Debug.PhasesFound,
		"total_raw":      result.Debug.TotalRaw,
		"filtered_count": result.Debug.FilteredCount,
		"new":            byStatus[domain.DealStatusNew],
		"qualified":      byStatus[domain.DealStatusQualified],
		"won":            byStatus[domain.DealStatusWon],
		"lost":           byStatus[domain.DealStatusLost],
	})

	if len(deals) == 0 {
		logger.Warn("deals: no deals returned, check the phase configuration")
	} else {
		logger.Info("deals: fetched")
	}

	return result, nil
}

func (s *Service) FetchCompanyDeals(ctx context.Context, companyID, searchTerm string) (*domain.DealsResult, error) {
	company, err := s.getPipefyCompany(companyID)
	if err != nil {
		return nil, err
	}

	return s.FetchDeals(ctx, FetchDealsParams{
		CompanyID:  company.ID,
		PipeID:     company.PipeID,
		Token:      company.PipefyToken,
		Config:     company.PhaseConfig,
		SearchTerm: searchTerm,
	})
}

func (s *Service) SyncCompanyDeals(ctx context.Context, company *domain.Company) (int, error) {
	if company == nil || !company.HasPipefy() {
		companyID := ""
		if company != nil {
			companyID = company.ID
		}
		return 0, NewDealError(ErrPipefyNotConfigured, apiErrors.ErrPipefyNotConfigured, companyID, "")
	}

	result, err := s.FetchDeals(ctx, FetchDealsParams{
		CompanyID: company.ID,
		PipeID:    company.PipeID,
		Token:     company.PipefyToken,
		Config:    company.PhaseConfig,
	})
	if err != nil {
		return 0, err
	}

	// Fase que falhou no meio da paginação deixaria o snapshot sem os negócios dela
	if failed := result.Debug.FailedPhases; len(failed) > 0 {
		return 0, NewDealError(ErrPartialFetch, apiErrors.ErrExternalService, company.ID, "fases com falha: "+strings.Join(failed, ", "))
	}

	if err := s.dealRepository.ReplaceCompanyDeals(ctx, company.ID, result.Deals); err != nil {
		dealErr := NewDealError(ErrPersistDeals, apiErrors.ErrDatabaseOperation, company.ID, err.Error())
		dealErr.Cause = err
		return 0, dealErr
	}

	return len(result.Deals), nil
}

func (s *Service) ListStoredDeals(companyID string, filters domain.DealFilters) ([]*domain.Deal, error) {
	if companyID == "" {
		return nil, NewDealError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, NewDealError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, companyID, "")
	}

	deals, err := s.dealRepository.ListByCompany(companyID, filters)
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("deals: failed to list stored deals")
		dealErr := NewDealError(ErrListDeals, apiErrors.ErrDatabaseOperation, companyID, "")
		dealErr.Cause = err
		return nil, dealErr
	}

	return deals, nil
}

func (s *Service) GetMetrics(companyID string, filters domain.DealFilters) (*domain.DealMetrics, error) {
	deals, err := s.ListStoredDeals(companyID, filters)
	if err != nil {
		return nil, err
	}

	return Summarize(deals), nil
}

func (s *Service) GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error) {
	details, err := s.pipefyService.GetPipeDetails(ctx, pipeID, token)
	if err != nil {
		return nil, wrapPipefyError(ErrFetchPipeDetails, "", err)
	}

	return details, nil
}

func (s *Service) getPipefyCompany(companyID string) (*domain.Company, error) {
	if companyID == "" {
		return nil, NewDealError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	company, err := s.companyRepository.GetCompanyByID(companyID)
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("deals: failed to load company")
		dealErr := NewDealError(ErrFetchCompany, apiErrors.ErrDatabaseOperation, companyID, "")
		dealErr.Cause = err
		return nil, dealErr
	}

	if company == nil {
		return nil, NewDealError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, companyID, "")
	}

	if !company.HasPipefy() {
		return nil, NewDealError(ErrPipefyNotConfigured, apiErrors.ErrPipefyNotConfigured, companyID, "")
	}

	return company, nil
}

// buildDeal converte um card em Deal; o resultado não é alterado depois de criado
func buildDeal(companyID string, card *pipefydomain.Card, classifier *Classifier, cfg domain.PhaseConfig) *domain.Deal {
	phaseName := card.CurrentPhase.Name
	if phaseName == "" {
		phaseName = card.SourcePhase
	}

	status, rule := classifier.explain(card.CurrentPhase.ID, phaseName)
	createdAt := ResolveCreatedAt(card)
	date := ResolveDealDate(card, status)
	labels := labelNames(card.Labels)
	utm := ResolveUTM(card.Fields)

	amount := 0.0
	if field := SelectValueField(card.Fields, cfg.ValueField); field != nil {
		amount = ParseAmount(field.Value)
	}

	deal := &domain.Deal{
		ID:            card.ID,
		CompanyID:     companyID,
		Title:         card.Title,
		Date:          date,
		CreatedAt:     createdAt,
		DaysToClose:   DaysToClose(date, createdAt),
		Amount:        amount,
		Channel:       resolveChannel(labels, utm.Source),
		Labels:        labels,
		Seller:        resolveSeller(card),
		Client:        resolveClient(card),
		Status:        status,
		PhaseID:       card.CurrentPhase.ID,
		PhaseName:     phaseName,
		UTMCampaign:   utm.Campaign,
		UTMContent:    utm.Content,
		UTMTerm:       utm.Term,
		UTMSource:     utm.Source,
		UTMMedium:     utm.Medium,
		InsuranceType: ResolveInsuranceType(card.Fields),
	}

	if status == domain.DealStatusLost {
		reason := ResolveLossReason(card.Fields, cfg.LossReasonField)
		deal.LossReason = &reason
	}
	if finishedAt := strings.TrimSpace(card.FinishedAt); finishedAt != "" {
		deal.WonDate = &finishedAt
	}

	logrus.WithFields(logrus.Fields{
		"card_id":    card.ID,
		"phase_id":   deal.PhaseID,
		"phase_name": phaseName,
		"status":     status,
		"rule":       rule,
	}).Trace("deals: card classified")

	return deal
}

// matchesSearch compara o termo já normalizado com título, cliente, vendedor e etiquetas
func matchesSearch(deal *domain.Deal, normalizedTerm string) bool {
	candidates := append([]string{deal.Title, deal.Client, deal.Seller}, deal.Labels...)
	for _, candidate := range candidates {
		if strings.Contains(Normalize(candidate), normalizedTerm) {
			return true
		}
	}
	return false
}
