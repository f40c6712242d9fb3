package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

var fixedNow = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func seedCampaigns() []*domain.Campaign {
	return []*domain.Campaign{
		{
			ID: "1", Name: "Campagne Email Q4 2024", Platform: domain.PlatformLemlist, Status: domain.CampaignStatusActive,
			Metrics: domain.CampaignMetrics{Sent: 5000, Opened: 1425, Clicked: 285, Replied: 57, Conversions: 23, OpenRate: 30, ClickRate: 20, ReplyRate: 4, ConversionRate: 1.6, Cost: 2500, Revenue: 15400, ROI: 516},
		},
		{
			ID: "2", Name: "Google Ads - SaaS B2B", Platform: domain.PlatformGoogleAds, Status: domain.CampaignStatusActive,
			Metrics: domain.CampaignMetrics{Clicked: 1250, Conversions: 45, ClickRate: 3.2, ConversionRate: 3.6, Cost: 8500, Revenue: 27000, ROI: 218},
		},
		{
			ID: "3", Name: "Meta Ads - Retargeting", Platform: domain.PlatformMetaAds, Status: domain.CampaignStatusCompleted,
			Metrics: domain.CampaignMetrics{Clicked: 890, Conversions: 34, ClickRate: 4.1, ConversionRate: 3.8, Cost: 3200, Revenue: 18500, ROI: 478},
		},
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockCampaignRepository, *mocks.MockLeadRepository, *mocks.MockHistoryRepository) {
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	historyRepo := mocks.NewMockHistoryRepository(ctrl)

	service := NewService(campaignRepo, leadRepo, historyRepo, nil).
		WithClock(func() time.Time { return fixedNow }).
		WithIDGenerator(func() (string, error) { return "history-abc", nil })

	return service, campaignRepo, leadRepo, historyRepo
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, campaignRepo, _, _ := newTestService(ctrl)

	campaignRepo.EXPECT().ListCampaigns().Return(seedCampaigns()).AnyTimes()

	t.Run("taxas recalculadas quando há envios", func(t *testing.T) {
		campaigns := service.ListCampaigns(domain.CampaignFilters{Platform: "lemlist"})
		require.Len(t, campaigns, 1)
		assert.InDelta(t, 28.5, campaigns[0].Metrics.OpenRate, 1e-9)
		assert.InDelta(t, 0.46, campaigns[0].Metrics.ConversionRate, 1e-9)
	})

	t.Run("taxas da plataforma mantidas sem envios", func(t *testing.T) {
		campaigns := service.ListCampaigns(domain.CampaignFilters{Search: "google"})
		require.Len(t, campaigns, 1)
		assert.InDelta(t, 3.2, campaigns[0].Metrics.ClickRate, 1e-9)
		assert.InDelta(t, 217.65, campaigns[0].Metrics.ROI, 1e-9)
	})

	t.Run("filtro por status", func(t *testing.T) {
		assert.Len(t, service.ListCampaigns(domain.CampaignFilters{Status: "active"}), 2)
		assert.Len(t, service.ListCampaigns(domain.CampaignFilters{Status: "all"}), 3)
	})
}

func TestService_GetMetricsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, campaignRepo, leadRepo, _ := newTestService(ctrl)

	campaignRepo.EXPECT().ListCampaigns().Return(seedCampaigns())
	leadRepo.EXPECT().ListLeads().Return([]*domain.Lead{
		{ID: "1", Score: domain.LeadScoreHot},
		{ID: "2", Score: domain.LeadScoreWarm},
		{ID: "3", Score: domain.LeadScoreCold},
	})

	summary := service.GetMetricsSummary()

	assert.Equal(t, 3, summary.Totals.Campaigns)
	assert.Equal(t, 5000, summary.Totals.Sent)
	assert.Equal(t, 102, summary.Totals.Conversions)
	assert.Equal(t, 2425, summary.Totals.Clicked)
	assert.InDelta(t, 2.04, summary.Totals.ConversionRate, 1e-9)
	assert.InDelta(t, 14200.0, summary.Totals.Cost, 1e-9)
	assert.InDelta(t, 60900.0, summary.Totals.Revenue, 1e-9)
	assert.InDelta(t, 328.87, summary.Totals.ROI, 1e-9)
	assert.Equal(t, domain.ScoreBuckets{Hot: 1, Warm: 1, Cold: 1, Total: 3}, summary.Distribution)
	assert.Equal(t, 2, summary.ActiveCount)
}

func TestService_UpdateCampaignStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, campaignRepo, _, historyRepo := newTestService(ctrl)

	tests := []struct {
		name     string
		id       string
		status   domain.CampaignStatus
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:   "pausa campanha ativa e registra histórico",
			id:     "2",
			status: domain.CampaignStatusPaused,
			setup: func() {
				campaignRepo.EXPECT().UpdateStatus("2", domain.CampaignStatusPaused, fixedNow).
					Return(domain.CampaignStatusActive, true)
				campaignRepo.EXPECT().GetCampaignByID("2").
					Return(&domain.Campaign{ID: "2", Name: "Google Ads - SaaS B2B", Status: domain.CampaignStatusPaused, LastUpdated: fixedNow}, true)
				historyRepo.EXPECT().AddHistoryItem(gomock.Any()).Do(func(item *domain.HistoryItem) {
					assert.Equal(t, domain.HistoryTypeCampaign, item.Type)
					assert.Equal(t, domain.CampaignDetails{
						CampaignID:     "2",
						PreviousStatus: domain.CampaignStatusActive,
						NewStatus:      domain.CampaignStatusPaused,
					}, item.Details)
				})
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
				assert.Equal(t, fixedNow, campaign.LastUpdated)
			},
		},
		{
			name:   "mesma transição é aceita sem validação",
			id:     "3",
			status: domain.CampaignStatusActive,
			setup: func() {
				campaignRepo.EXPECT().UpdateStatus("3", domain.CampaignStatusActive, fixedNow).
					Return(domain.CampaignStatusCompleted, true)
				campaignRepo.EXPECT().GetCampaignByID("3").
					Return(&domain.Campaign{ID: "3", Status: domain.CampaignStatusActive}, true)
				historyRepo.EXPECT().AddHistoryItem(gomock.Any())
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:   "campanha inexistente",
			id:     "999",
			status: domain.CampaignStatusPaused,
			setup: func() {
				campaignRepo.EXPECT().UpdateStatus("999", domain.CampaignStatusPaused, fixedNow).
					Return(domain.CampaignStatus(""), false)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrCampaignNotFound)
			},
		},
		{
			name:   "status inválido não chega ao repositório",
			id:     "1",
			status: domain.CampaignStatus("archived"),
			setup:  func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				var campaignErr *CampaignError
				require.True(t, errors.As(err, &campaignErr))
				assert.Equal(t, "VAL_004", campaignErr.Code)
			},
		},
		{
			name:   "id vazio",
			id:     "",
			status: domain.CampaignStatusPaused,
			setup:  func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrCampaignIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			campaign, err := service.UpdateCampaignStatus(tt.id, tt.status)
			tt.validate(t, campaign, err)
		})
	}
}

func TestService_GetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, campaignRepo, _, _ := newTestService(ctrl)

	campaignRepo.EXPECT().GetCampaignByID("1").Return(seedCampaigns()[0], true)
	campaignRepo.EXPECT().GetCampaignByID("x").Return(nil, false)

	campaign, err := service.GetCampaign("1")
	require.NoError(t, err)
	assert.Equal(t, "Campagne Email Q4 2024", campaign.Name)

	_, err = service.GetCampaign("x")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}
