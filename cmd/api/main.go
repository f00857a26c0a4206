package main

import (
	"context"

	"github.com/rodrigohacking/plinhub/infrastructure/database/postgres"
	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy"
	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/rodrigohacking/plinhub/infrastructure/repository"
	"github.com/rodrigohacking/plinhub/internal/api"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/internal/scheduler"
	"github.com/rodrigohacking/plinhub/internal/usecases/authenticating"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel, nil)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	pipefyClient := pipefyclient.NewClient(cfg)
	pipefyIntegrator := pipefy.New(cfg, pipefyClient)

	dealService := dealing.NewService(cfg, pipefyIntegrator, companyRepo, dealRepo)

	dealSyncService := scheduler.NewDealSyncService(companyRepo, dealService, cfg)
	if err := dealSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de negócios")
	} else {
		logrus.Info("Agendador de sincronização de negócios iniciado com sucesso")
	}

	server, err := api.New(cfg, dealService, authenticator, dealSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
