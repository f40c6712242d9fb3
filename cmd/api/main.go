package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/infrastructure/seed"
	"github.com/vfg2006/campaign-leads-api/internal/api"
	"github.com/vfg2006/campaign-leads-api/internal/api/handler"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/scheduler"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/history"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := memoryConn(cfg.Seed)

	campaignRepo := repository.NewCampaignRepository(conn)
	leadRepo := repository.NewLeadRepository(conn)
	reportRepo := repository.NewReportRepository(conn)
	uploadRepo := repository.NewUploadRepository(conn)
	historyRepo := repository.NewHistoryRepository(conn)

	recorder := metrics.NewRecorder()

	// Conclusões pendentes das importações
	deferredTasks := scheduler.NewDeferredTasks()
	defer deferredTasks.Stop()

	campaignService := campaign.NewService(campaignRepo, leadRepo, historyRepo, recorder)
	leadService := lead.NewService(leadRepo, recorder)
	reportService := reporting.NewService(cfg, reportRepo, leadRepo, campaignRepo, historyRepo, recorder)
	uploadService := uploading.NewService(cfg, uploadRepo, historyRepo, deferredTasks, recorder)
	historyService := history.NewService(historyRepo)

	automaticAnalysisService := scheduler.NewAutomaticAnalysisService(reportService, historyRepo, cfg)

	if err := automaticAnalysisService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da análise automática")
	} else {
		logrus.Info("Agendador da análise automática iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Campaigns: campaignService,
		Leads:     leadService,
		Reports:   reportService,
		Uploads:   uploadService,
		History:   historyService,
		CronJobs: handler.CronJobServices{
			AutomaticAnalysisService: automaticAnalysisService,
		},
		StoreStats: conn.Stats,
	}, recorder)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// memoryConn carrega o dataset inicial e abre o armazenamento em memória
func memoryConn(seedConfig config.Seed) *memory.Connection {
	dataset, err := seed.Load(seedConfig.File)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados iniciais")
	}

	conn := memory.NewConnection(dataset)

	logrus.WithFields(logrus.Fields{
		"seed":  seedConfig.File,
		"stats": conn.Stats(),
	}).Info("Armazenamento em memória inicializado com sucesso")
	return conn
}
