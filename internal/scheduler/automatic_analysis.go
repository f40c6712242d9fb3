package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

// ReportGenerator gera e grava um relatório com o estado atual, registrando
// a análise no histórico
type ReportGenerator interface {
	GenerateAnalysis() (*domain.AnalysisReport, error)
}

type AutomaticAnalysisConfig struct {
	CronSchedule string
	Enabled      bool
}

// AutomaticAnalysisService gera relatórios periodicamente. Falhas viram um item de erro no histórico.
type AutomaticAnalysisService struct {
	scheduler         *gocron.Scheduler
	config            AutomaticAnalysisConfig
	reporter          ReportGenerator
	historyRepo       repository.HistoryRepository
	syncRunning       bool
	syncMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastReportID      string
}

func NewAutomaticAnalysisService(
	reporter ReportGenerator,
	historyRepo repository.HistoryRepository,
	appConfig *config.Config,
) *AutomaticAnalysisService {
	analysisConfig := AutomaticAnalysisConfig{
		CronSchedule: appConfig.AutomaticAnalysis.CronSchedule,
		Enabled:      appConfig.AutomaticAnalysis.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": analysisConfig.CronSchedule,
		"enabled":       analysisConfig.Enabled,
	}).Info("Configuração da análise automática carregada")

	return &AutomaticAnalysisService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      analysisConfig,
		reporter:    reporter,
		historyRepo: historyRepo,
	}
}

// Start inicia o agendador
func (s *AutomaticAnalysisService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Análise automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da análise automática")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAnalysis()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise automática: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da análise automática")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AutomaticAnalysisService) runAnalysis() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise automática já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando análise automática dos leads")

	report, err := s.reporter.GenerateAnalysis()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório na análise automática")
		s.historyRepo.AddHistoryItem(domain.NewHistoryItem(
			fmt.Sprintf("history-analysis-%d", startTime.UnixMilli()),
			"Analyse automatique",
			"Échec de la génération du rapport",
			startTime,
			domain.HistoryStatusError,
			domain.AnalysisDetails{},
		))
		return
	}

	s.syncMutex.Lock()
	s.lastRunFinishedAt = time.Now()
	s.lastReportID = report.ID
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"report_id": report.ID,
		"leads":     report.Summary.TotalLeads,
	}).Info("Análise automática concluída")
}

// TriggerManualSync inicia manualmente uma análise
func (s *AutomaticAnalysisService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise automática já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando análise manual")
	go s.runAnalysis()
}

// GetStatus retorna o status atual do agendador
func (s *AutomaticAnalysisService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.syncRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunFinishedAt,
		"last_report_id":        s.lastReportID,
	}
}
