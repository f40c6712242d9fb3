package reporting

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

var fixedNow = time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

func seqIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("report-%d", n), nil
	}
}

func seedLeads() []*domain.Lead {
	return []*domain.Lead{
		{ID: "1", Score: domain.LeadScoreHot, Status: domain.LeadStatusQualified},
		{ID: "2", Score: domain.LeadScoreWarm, Status: domain.LeadStatusEngaged},
		{ID: "3", Score: domain.LeadScoreCold, Status: domain.LeadStatusContacted},
	}
}

func seedCampaigns() []*domain.Campaign {
	return []*domain.Campaign{
		{ID: "1", Platform: domain.PlatformLemlist, Metrics: domain.CampaignMetrics{Sent: 5000, Conversions: 23, Cost: 2500, Revenue: 15400}},
		{ID: "2", Platform: domain.PlatformGoogleAds, Metrics: domain.CampaignMetrics{Conversions: 45, Cost: 8500, Revenue: 27000}},
		{ID: "3", Platform: domain.PlatformMetaAds, Metrics: domain.CampaignMetrics{Conversions: 34, Cost: 3200, Revenue: 18500}},
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockReportRepository, *mocks.MockLeadRepository, *mocks.MockCampaignRepository, *mocks.MockHistoryRepository) {
	reportRepo := mocks.NewMockReportRepository(ctrl)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	historyRepo := mocks.NewMockHistoryRepository(ctrl)

	cfg := &config.Config{Report: config.Report{TopChannels: 2}}
	service := NewService(cfg, reportRepo, leadRepo, campaignRepo, historyRepo, metrics.NewRecorder()).
		WithClock(func() time.Time { return fixedNow }).
		WithIDGenerator(seqIDs())

	return service, reportRepo, leadRepo, campaignRepo, historyRepo
}

func TestService_GenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, _, _, _ := newTestService(ctrl)

	first, err := service.GenerateReport(seedLeads(), seedCampaigns())
	require.NoError(t, err)
	second, err := service.GenerateReport(seedLeads(), seedCampaigns())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Summary, second.Summary)

	assert.Equal(t, domain.ReportSummary{
		TotalLeads:            3,
		HotLeads:              1,
		WarmLeads:             1,
		ColdLeads:             1,
		ConversionRate:        2.04,
		TopPerformingChannels: []string{"Google Ads", "Meta Ads"},
	}, first.Summary)
	assert.Equal(t, "1", first.CampaignID)
	assert.Equal(t, "Analyse Automatique - 01/02/2025", first.Title)
	assert.Equal(t, fixedNow, first.DateGenerated)
	assert.Len(t, first.Insights, 3)
	assert.Len(t, first.Recommendations, 4)
}

func TestService_GenerateReport_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, _, _, _ := newTestService(ctrl)

	report, err := service.GenerateReport(nil, nil)
	require.NoError(t, err)

	assert.Zero(t, report.Summary.TotalLeads)
	assert.Zero(t, report.Summary.ConversionRate)
	assert.Empty(t, report.Summary.TopPerformingChannels)
	assert.Empty(t, report.CampaignID)
}

type echoWriter struct{}

func (echoWriter) Insights(s domain.ReportSummary) []string {
	return []string{fmt.Sprintf("%d hot", s.HotLeads)}
}

func (echoWriter) Recommendations(s domain.ReportSummary) []string {
	return []string{fmt.Sprintf("%.2f%%", s.ConversionRate)}
}

func TestService_GenerateReport_CustomWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, _, _, _ := newTestService(ctrl)
	service.WithTextWriter(echoWriter{})

	report, err := service.GenerateReport(seedLeads(), seedCampaigns())
	require.NoError(t, err)
	assert.Equal(t, []string{"1 hot"}, report.Insights)
	assert.Equal(t, []string{"2.04%"}, report.Recommendations)
}

func TestService_GenerateReport_IDError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, _, _, _ := newTestService(ctrl)
	service.WithIDGenerator(func() (string, error) { return "", errors.New("entropy") })

	report, err := service.GenerateReport(seedLeads(), seedCampaigns())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrGenerateID)
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, reportRepo, leadRepo, campaignRepo, historyRepo := newTestService(ctrl)

	leadRepo.EXPECT().ListLeads().Return(seedLeads())
	campaignRepo.EXPECT().ListCampaigns().Return(seedCampaigns())

	var stored *domain.AnalysisReport
	reportRepo.EXPECT().AddReport(gomock.Any()).Do(func(r *domain.AnalysisReport) {
		stored = r
	})
	historyRepo.EXPECT().AddHistoryItem(gomock.Any()).Do(func(item *domain.HistoryItem) {
		assert.Equal(t, domain.HistoryTypeReport, item.Type)
		assert.Equal(t, "history-report-1", item.ID)
		assert.Equal(t, domain.HistoryStatusCompleted, item.Status)
		details, ok := item.Details.(domain.ReportDetails)
		require.True(t, ok)
		assert.Equal(t, "report-1", details.ReportID)
	})

	report, err := service.Generate()
	require.NoError(t, err)
	assert.Equal(t, report, stored)
}

func TestService_GenerateAnalysis_SingleHistoryEntry(t *testing.T) {
	conn := memory.NewConnection(&memory.Dataset{Leads: seedLeads(), Campaigns: seedCampaigns()})
	historyRepo := repository.NewHistoryRepository(conn)
	reportRepo := repository.NewReportRepository(conn)

	service := NewService(&config.Config{Report: config.Report{TopChannels: 2}},
		reportRepo,
		repository.NewLeadRepository(conn),
		repository.NewCampaignRepository(conn),
		historyRepo,
		metrics.NewRecorder(),
	).WithIDGenerator(seqIDs())

	report, err := service.GenerateAnalysis()
	require.NoError(t, err)

	items := historyRepo.ListHistory()
	require.Len(t, items, 1)
	assert.Equal(t, "history-analysis-"+report.ID, items[0].ID)
	assert.Equal(t, domain.HistoryTypeAnalysis, items[0].Type)
	assert.Equal(t, domain.AnalysisDetails{
		ReportID:        report.ID,
		LeadsAnalyzed:   report.Summary.TotalLeads,
		Insights:        len(report.Insights),
		Recommendations: len(report.Recommendations),
	}, items[0].Details)

	stored, found := reportRepo.GetReportByID(report.ID)
	require.True(t, found)
	assert.Equal(t, report.Title, stored.Title)

	_, err = service.Generate()
	require.NoError(t, err)
	items = historyRepo.ListHistory()
	require.Len(t, items, 2)
	assert.Equal(t, domain.HistoryTypeReport, items[0].Type)
}

func TestService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, reportRepo, _, _, _ := newTestService(ctrl)

	tests := []struct {
		name     string
		id       string
		setup    func()
		validate func(t *testing.T, report *domain.AnalysisReport, err error)
	}{
		{
			name: "relatório existente",
			id:   "1",
			setup: func() {
				reportRepo.EXPECT().GetReportByID("1").Return(&domain.AnalysisReport{ID: "1"}, true)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "1", report.ID)
			},
		},
		{
			name: "relatório inexistente",
			id:   "99",
			setup: func() {
				reportRepo.EXPECT().GetReportByID("99").Return(nil, false)
			},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assert.ErrorIs(t, err, ErrReportNotFound)
				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, "RES_001", reportErr.Code)
			},
		},
		{
			name:  "id vazio",
			id:    "",
			setup: func() {},
			validate: func(t *testing.T, report *domain.AnalysisReport, err error) {
				assert.ErrorIs(t, err, ErrReportIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.GetReport(tt.id)
			tt.validate(t, report, err)
		})
	}
}

func TestService_ListReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, reportRepo, _, _, _ := newTestService(ctrl)

	reportRepo.EXPECT().ListReports().Return([]*domain.AnalysisReport{
		{ID: "2", Title: "Analyse Automatique - 01/02/2025"},
		{ID: "1", Title: "Analyse Q4 2024 - Campagne Email"},
	}).Times(2)

	assert.Len(t, service.ListReports(domain.ReportFilters{}), 2)

	result := service.ListReports(domain.ReportFilters{Search: "q4"})
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}
