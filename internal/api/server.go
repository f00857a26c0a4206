package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/rodrigohacking/plinhub/internal/api/handler"
	"github.com/rodrigohacking/plinhub/internal/api/handler/router"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/internal/usecases/authenticating"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	dealService dealing.DealService,
	authenticator authenticating.Authenticator,
	dealSyncService handler.SyncJob,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, dealService, authenticator, dealSyncService),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      config.Server.WriteTimeout,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 15 * time.Second
	}

	return srv, nil
}

// NewHandler monta rotas e a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	dealService dealing.DealService,
	authenticator authenticating.Authenticator,
	dealSyncService handler.SyncJob,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Deals(dealService)...),
		router.WithRoutes(handler.Pipefy(dealService)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{DealSyncService: dealSyncService})...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
