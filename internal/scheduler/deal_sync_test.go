package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/rodrigohacking/plinhub/infrastructure/repository/mocks"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/internal/domain"
	dealingmocks "github.com/rodrigohacking/plinhub/internal/usecases/dealing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDealSync(t *testing.T) (*DealSyncService, *mocks.MockCompanyRepository, *dealingmocks.MockDealService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	dealService := dealingmocks.NewMockDealService(ctrl)

	service := NewDealSyncService(companyRepo, dealService, &config.Config{
		DealSync: config.DealSync{CronSchedule: "0 */2 * * *", MaxConcurrentJobs: 2},
	})

	return service, companyRepo, dealService
}

func TestDealSyncService_syncAllDeals(t *testing.T) {
	service, companyRepo, dealService := newTestDealSync(t)

	companies := []*domain.Company{
		{ID: "c1", PipeID: "p1", PipefyToken: "t1"},
		{ID: "c2", PipeID: "p2", PipefyToken: "t2"},
		{ID: "c3", PipeID: "p3"},
		{ID: "c4", PipeID: "p4", PipefyToken: "t4"},
	}

	companyRepo.EXPECT().ListPipefyCompanies().Return(companies, nil)
	dealService.EXPECT().SyncCompanyDeals(gomock.Any(), companies[0]).Return(10, nil)
	dealService.EXPECT().SyncCompanyDeals(gomock.Any(), companies[1]).Return(0, errors.New("pipefy indisponível"))
	dealService.EXPECT().SyncCompanyDeals(gomock.Any(), companies[3]).Return(5, nil)

	service.syncAllDeals()

	status := service.GetStatus()
	run, ok := status["last_run"].(DealSyncRun)
	require.True(t, ok)

	assert.Len(t, run.ID, 6)
	assert.Equal(t, 4, run.Companies)
	assert.Equal(t, 2, run.SyncedCompanies)
	assert.Equal(t, 15, run.Deals)
	assert.Equal(t, []string{"c2"}, run.FailedCompanies)
	assert.False(t, run.CompletedAt.Before(run.StartedAt))
	assert.Equal(t, false, status["sync_running"])
}

func TestDealSyncService_syncAllDeals_ListError(t *testing.T) {
	service, companyRepo, _ := newTestDealSync(t)

	companyRepo.EXPECT().ListPipefyCompanies().Return(nil, errors.New("connection refused"))

	service.syncAllDeals()

	run := service.GetStatus()["last_run"].(DealSyncRun)
	assert.Empty(t, run.ID)
}

func TestDealSyncService_syncAllDeals_SkipsWhenRunning(t *testing.T) {
	service, _, _ := newTestDealSync(t)
	service.syncRunning = true

	// nenhum mock é chamado
	service.syncAllDeals()

	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestDealSyncService_Start_Disabled(t *testing.T) {
	service, _, _ := newTestDealSync(t)

	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestDealSyncService_Start_InvalidCron(t *testing.T) {
	service, _, _ := newTestDealSync(t)
	service.config.SyncEnabled = true
	service.config.CronSchedule = "invalid"

	err := service.Start(context.Background())

	assert.Error(t, err)
}

type ctxKey string

func TestDealSyncService_SyncUsesStartContext(t *testing.T) {
	service, companyRepo, dealService := newTestDealSync(t)

	ctx := context.WithValue(context.Background(), ctxKey("origem"), "start")
	require.NoError(t, service.Start(ctx))

	company := &domain.Company{ID: "c1", PipeID: "p1", PipefyToken: "t1"}
	companyRepo.EXPECT().ListPipefyCompanies().Return([]*domain.Company{company}, nil)
	dealService.EXPECT().
		SyncCompanyDeals(gomock.Any(), company).
		DoAndReturn(func(got context.Context, _ *domain.Company) (int, error) {
			assert.Equal(t, "start", got.Value(ctxKey("origem")))
			return 1, nil
		})

	// a execução roda em outra goroutine, como no gocron
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncAllDeals()
	}()
	<-done

	assert.Equal(t, 1, service.GetStatus()["last_run"].(DealSyncRun).Deals)
}
