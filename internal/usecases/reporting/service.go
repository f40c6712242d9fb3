package reporting

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
	"github.com/vfg2006/campaign-leads-api/pkg/utils"
)

const titleDateLayout = "02/01/2006" // dd/mm/aaaa

type Reporter interface {
	GenerateReport(leads []*domain.Lead, campaigns []*domain.Campaign) (*domain.AnalysisReport, error)
	Generate() (*domain.AnalysisReport, error)
	ListReports(filters domain.ReportFilters) []*domain.AnalysisReport
	GetReport(reportID string) (*domain.AnalysisReport, error)
}

type Service struct {
	reportRepository   repository.ReportRepository
	leadRepository     repository.LeadRepository
	campaignRepository repository.CampaignRepository
	historyRepository  repository.HistoryRepository
	writer             TextWriter
	metrics            *metrics.Recorder
	topChannels        int
	now                utils.Clock
	newID              utils.IDGenerator
}

func NewService(
	cfg *config.Config,
	reportRepo repository.ReportRepository,
	leadRepo repository.LeadRepository,
	campaignRepo repository.CampaignRepository,
	historyRepo repository.HistoryRepository,
	recorder *metrics.Recorder,
) *Service {
	return &Service{
		reportRepository:   reportRepo,
		leadRepository:     leadRepo,
		campaignRepository: campaignRepo,
		historyRepository:  historyRepo,
		writer:             StaticTextWriter{},
		metrics:            recorder,
		topChannels:        cfg.Report.TopChannels,
		now:                utils.SystemClock,
		newID:              utils.PrefixedID("report"),
	}
}

// WithTextWriter troca o gerador de insights e recomendações
func (s *Service) WithTextWriter(writer TextWriter) *Service {
	s.writer = writer
	return s
}

// WithClock e WithIDGenerator existem para tornar a geração determinística nos testes
func (s *Service) WithClock(clock utils.Clock) *Service {
	s.now = clock
	return s
}

func (s *Service) WithIDGenerator(gen utils.IDGenerator) *Service {
	s.newID = gen
	return s
}

// GenerateReport monta um relatório novo a partir dos leads e campanhas informados.
// Não grava nada; o resumo depende apenas das entradas.
func (s *Service) GenerateReport(leads []*domain.Lead, campaigns []*domain.Campaign) (*domain.AnalysisReport, error) {
	id, err := s.newID()
	if err != nil {
		return nil, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	summary := Summarize(leads, campaigns, s.topChannels)
	generatedAt := s.now()

	report := &domain.AnalysisReport{
		ID:              id,
		Title:           fmt.Sprintf("Analyse Automatique - %s", generatedAt.Format(titleDateLayout)),
		DateGenerated:   generatedAt,
		Summary:         summary,
		Insights:        s.writer.Insights(summary),
		Recommendations: s.writer.Recommendations(summary),
	}

	if best := measuring.BestCampaign(campaigns); best != nil {
		report.CampaignID = best.ID
	}

	return report, nil
}

// Summarize calcula o resumo de um relatório
func Summarize(leads []*domain.Lead, campaigns []*domain.Campaign, topChannels int) domain.ReportSummary {
	buckets := measuring.BucketByScore(leads)
	totals := measuring.AggregateCampaigns(campaigns)

	return domain.ReportSummary{
		TotalLeads:            buckets.Total,
		HotLeads:              buckets.Hot,
		WarmLeads:             buckets.Warm,
		ColdLeads:             buckets.Cold,
		ConversionRate:        utils.RoundWithTwoDecimalPlace(totals.ConversionRate),
		TopPerformingChannels: measuring.RankChannels(campaigns, topChannels),
	}
}

// Generate gera um relatório com o estado atual, grava como o mais recente e registra no histórico
func (s *Service) Generate() (*domain.AnalysisReport, error) {
	return s.generate(func(report *domain.AnalysisReport) *domain.HistoryItem {
		return domain.NewHistoryItem(
			"history-"+report.ID,
			"Génération rapport",
			report.Title,
			report.DateGenerated,
			domain.HistoryStatusCompleted,
			domain.ReportDetails{ReportID: report.ID},
		)
	})
}

// GenerateAnalysis faz o mesmo que Generate, mas o histórico recebe um único
// item de análise em vez do item de relatório
func (s *Service) GenerateAnalysis() (*domain.AnalysisReport, error) {
	return s.generate(func(report *domain.AnalysisReport) *domain.HistoryItem {
		return domain.NewHistoryItem(
			"history-analysis-"+report.ID,
			"Analyse automatique",
			report.Title,
			report.DateGenerated,
			domain.HistoryStatusCompleted,
			domain.AnalysisDetails{
				ReportID:        report.ID,
				LeadsAnalyzed:   report.Summary.TotalLeads,
				Insights:        len(report.Insights),
				Recommendations: len(report.Recommendations),
			},
		)
	})
}

func (s *Service) generate(entry func(report *domain.AnalysisReport) *domain.HistoryItem) (*domain.AnalysisReport, error) {
	leads := s.leadRepository.ListLeads()
	campaigns := s.campaignRepository.ListCampaigns()

	report, err := s.GenerateReport(leads, campaigns)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório")
		return nil, err
	}

	s.reportRepository.AddReport(report)
	s.historyRepository.AddHistoryItem(entry(report))
	s.metrics.ReportGenerated()

	logrus.WithFields(logrus.Fields{
		"report_id":   report.ID,
		"total_leads": report.Summary.TotalLeads,
		"campaign_id": report.CampaignID,
	}).Info("Relatório gerado")

	return report, nil
}

// ListReports retorna os relatórios do mais novo para o mais antigo
func (s *Service) ListReports(filters domain.ReportFilters) []*domain.AnalysisReport {
	return filtering.Reports(s.reportRepository.ListReports(), filters)
}

func (s *Service) GetReport(reportID string) (*domain.AnalysisReport, error) {
	if reportID == "" {
		return nil, NewReportError(ErrReportIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	report, found := s.reportRepository.GetReportByID(reportID)
	if !found {
		return nil, NewReportError(ErrReportNotFound, apiErrors.ErrResourceNotFound, reportID, "")
	}
	return report, nil
}
