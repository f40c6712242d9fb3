package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/internal/api/handler"
	"github.com/vfg2006/campaign-leads-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/history"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
	"github.com/vfg2006/campaign-leads-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Campaigns campaign.Campaigner
	Leads     lead.Leader
	Reports   reporting.Reporter
	Uploads   uploading.Uploader
	History   history.Historian
	CronJobs  handler.CronJobServices
	// StoreStats é opcional, alimenta o /healthcheck
	StoreStats handler.StoreStats
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(config *config.Config, services Services, recorder *metrics.Recorder) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.StoreStats)...),
		router.WithRoutes(handler.Metrics(recorder.Handler())...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Leads(services.Leads)...),
		router.WithRoutes(handler.Reports(services.Reports)...),
		router.WithRoutes(handler.Uploads(services.Uploads)...),
		router.WithRoutes(handler.History(services.History)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.RequestMetrics(recorder),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services, recorder *metrics.Recorder) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services, recorder),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

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
