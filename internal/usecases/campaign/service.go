package campaign

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
	"github.com/vfg2006/campaign-leads-api/pkg/utils"
)

type Campaigner interface {
	ListCampaigns(filters domain.CampaignFilters) []*domain.Campaign
	GetCampaign(campaignID string) (*domain.Campaign, error)
	GetMetricsSummary() *domain.CampaignSummaryResponse
	UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) (*domain.Campaign, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	leadRepository     repository.LeadRepository
	historyRepository  repository.HistoryRepository
	metrics            *metrics.Recorder
	now                utils.Clock
	newID              utils.IDGenerator
}

func NewService(
	campaignRepo repository.CampaignRepository,
	leadRepo repository.LeadRepository,
	historyRepo repository.HistoryRepository,
	recorder *metrics.Recorder,
) *Service {
	return &Service{
		campaignRepository: campaignRepo,
		leadRepository:     leadRepo,
		historyRepository:  historyRepo,
		metrics:            recorder,
		now:                utils.SystemClock,
		newID:              utils.PrefixedID("history"),
	}
}

func (s *Service) WithClock(clock utils.Clock) *Service {
	s.now = clock
	return s
}

func (s *Service) WithIDGenerator(gen utils.IDGenerator) *Service {
	s.newID = gen
	return s
}

// ListCampaigns retorna as campanhas filtradas com as taxas recalculadas
func (s *Service) ListCampaigns(filters domain.CampaignFilters) []*domain.Campaign {
	campaigns := filtering.Campaigns(s.campaignRepository.ListCampaigns(), filters)
	for _, c := range campaigns {
		c.Metrics = measuring.DeriveRates(c.Metrics)
	}
	return campaigns
}

func (s *Service) GetCampaign(campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaign, found := s.campaignRepository.GetCampaignByID(campaignID)
	if !found {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	campaign.Metrics = measuring.DeriveRates(campaign.Metrics)
	return campaign, nil
}

// GetMetricsSummary soma as métricas de todas as campanhas e a distribuição dos leads
func (s *Service) GetMetricsSummary() *domain.CampaignSummaryResponse {
	campaigns := s.campaignRepository.ListCampaigns()
	leads := s.leadRepository.ListLeads()

	active := 0
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusActive {
			active++
		}
	}

	totals := measuring.AggregateCampaigns(campaigns)
	totals.OpenRate = utils.RoundWithTwoDecimalPlace(totals.OpenRate)
	totals.ClickRate = utils.RoundWithTwoDecimalPlace(totals.ClickRate)
	totals.ConversionRate = utils.RoundWithTwoDecimalPlace(totals.ConversionRate)
	totals.ROI = utils.RoundWithTwoDecimalPlace(totals.ROI)

	return &domain.CampaignSummaryResponse{
		Totals:       totals,
		Distribution: measuring.BucketByScore(leads),
		ActiveCount:  active,
	}
}

// UpdateCampaignStatus troca o status sem validar a transição e registra no histórico
func (s *Service) UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if !status.IsValid() {
		return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidEnumValue, campaignID, string(status))
	}

	now := s.now()
	previous, found := s.campaignRepository.UpdateStatus(campaignID, status, now)
	s.metrics.EntityMutated("campaign", "status", found)
	if !found {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	campaign, found := s.campaignRepository.GetCampaignByID(campaignID)
	if !found {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	historyID, err := s.newID()
	if err != nil {
		// o status já foi alterado, só o histórico fica sem registro
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Não foi possível registrar a alteração no histórico")
	} else {
		s.historyRepository.AddHistoryItem(domain.NewHistoryItem(
			historyID,
			"Mise à jour campagne",
			fmt.Sprintf("%s : %s → %s", campaign.Name, previous, status),
			now,
			domain.HistoryStatusCompleted,
			domain.CampaignDetails{CampaignID: campaignID, PreviousStatus: previous, NewStatus: status},
		))
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":     campaignID,
		"previous_status": previous,
		"new_status":      status,
	}).Info("Status da campanha atualizado")

	campaign.Metrics = measuring.DeriveRates(campaign.Metrics)
	return campaign, nil
}
