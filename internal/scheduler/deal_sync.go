package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rodrigohacking/plinhub/infrastructure/repository"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/log"
	"github.com/rodrigohacking/plinhub/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DealSyncConfig representa a configuração do agendador de sincronização de negócios
type DealSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// DealSyncRun resume a última execução da sincronização
type DealSyncRun struct {
	ID              string    `json:"id"`
	StartedAt       time.Time `json:"started_at"`
	CompletedAt     time.Time `json:"completed_at"`
	Companies       int       `json:"companies"`
	SyncedCompanies int       `json:"synced_companies"`
	FailedCompanies []string  `json:"failed_companies"`
	Deals           int       `json:"deals"`
}

// DealSyncService busca os negócios de todas as empresas com Pipefy e substitui o snapshot salvo
type DealSyncService struct {
	scheduler   *gocron.Scheduler
	config      DealSyncConfig
	companyRepo repository.CompanyRepository
	dealService dealing.DealService
	ctx         context.Context
	syncRunning bool
	syncMutex   sync.Mutex
	lastRun     DealSyncRun
}

func NewDealSyncService(
	companyRepo repository.CompanyRepository,
	dealService dealing.DealService,
	appConfig *config.Config,
) *DealSyncService {
	syncConfig := DealSyncConfig{
		CronSchedule:        appConfig.DealSync.CronSchedule,
		RequestDelaySeconds: appConfig.DealSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DealSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.DealSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de negócios carregada")

	return &DealSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		companyRepo: companyRepo,
		dealService: dealService,
		ctx:         context.Background(),
	}
}

// Start inicia o agendador
func (s *DealSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de negócios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de negócios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDeals()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de negócios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de negócios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllDeals sincroniza os negócios de todas as empresas; execuções sobrepostas são ignoradas
func (s *DealSyncService) syncAllDeals() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de negócios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	ctx := s.ctx
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o ID da execução")
	}

	run := DealSyncRun{ID: runID, StartedAt: time.Now()}
	logger := log.ForRun(runID)
	logger.Info("Iniciando sincronização de negócios")

	companies, err := s.companyRepo.ListPipefyCompanies()
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar empresas para sincronização de negócios")
		return
	}

	run.Companies = len(companies)
	if len(companies) == 0 {
		logger.Info("Nenhuma empresa com Pipefy configurado")
		run.CompletedAt = time.Now()
		s.setLastRun(run)
		return
	}

	s.processCompanies(ctx, logger, companies, &run)

	run.CompletedAt = time.Now()
	s.setLastRun(run)

	logger.WithFields(log.Fields{
		"duration":  run.CompletedAt.Sub(run.StartedAt).String(),
		"companies": run.Companies,
		"synced":    run.SyncedCompanies,
		"failed":    len(run.FailedCompanies),
		"deals":     run.Deals,
	}).Info("Sincronização de negócios concluída")
}

// processCompanies sincroniza as empresas com no máximo MaxConcurrentJobs em paralelo
func (s *DealSyncService) processCompanies(ctx context.Context, logger log.Logger, companies []*domain.Company, run *DealSyncRun) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, company := range companies {
		if !company.HasPipefy() {
			logger.WithCompany(company.ID).Warn("Empresa sem pipe ou token do Pipefy. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(c *domain.Company) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			count, err := s.dealService.SyncCompanyDeals(ctx, c)

			mu.Lock()
			if err != nil {
				run.FailedCompanies = append(run.FailedCompanies, c.ID)
			} else {
				run.SyncedCompanies++
				run.Deals += count
			}
			mu.Unlock()

			if err != nil {
				logger.WithCompany(c.ID).WithFields(log.Fields{
					"pipe_id": c.PipeID,
					"error":   err.Error(),
				}).Error("Erro ao sincronizar negócios da empresa")
			} else {
				logger.WithCompany(c.ID).WithField("deals", count).Info("Negócios da empresa sincronizados")
			}

			// Pausa entre empresas para respeitar o limite do Pipefy
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(company)
	}

	wg.Wait()
}

func (s *DealSyncService) setLastRun(run DealSyncRun) {
	s.syncMutex.Lock()
	s.lastRun = run
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma sincronização de negócios
func (s *DealSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de negócios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de negócios")
	go s.syncAllDeals()
}

// GetStatus retorna o status atual do agendador
func (s *DealSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":         s.config.SyncEnabled,
		"sync_cron":            s.config.CronSchedule,
		"sync_max_concurrent":  s.config.MaxConcurrentJobs,
		"sync_request_delay_s": s.config.RequestDelaySeconds,
		"sync_running":         s.syncRunning,
		"last_run":             s.lastRun,
	}
}
