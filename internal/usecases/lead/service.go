package lead

import (
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

type Leader interface {
	ListLeads(filters domain.LeadFilters) []*domain.Lead
	GetLead(leadID string) (*domain.Lead, error)
	GetScoreDistribution() domain.ScoreBuckets
	UpdateLeadScore(leadID string, score domain.LeadScore) (*domain.Lead, error)
	UpdateLeadStatus(leadID string, status domain.LeadStatus) (*domain.Lead, error)
}

type Service struct {
	leadRepository repository.LeadRepository
	metrics        *metrics.Recorder
}

func NewService(leadRepo repository.LeadRepository, recorder *metrics.Recorder) *Service {
	return &Service{
		leadRepository: leadRepo,
		metrics:        recorder,
	}
}

func (s *Service) ListLeads(filters domain.LeadFilters) []*domain.Lead {
	return filtering.Leads(s.leadRepository.ListLeads(), filters)
}

func (s *Service) GetLead(leadID string) (*domain.Lead, error) {
	if leadID == "" {
		return nil, NewLeadError(ErrLeadIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	lead, found := s.leadRepository.GetLeadByID(leadID)
	if !found {
		return nil, NewLeadError(ErrLeadNotFound, apiErrors.ErrResourceNotFound, leadID, "")
	}
	return lead, nil
}

func (s *Service) GetScoreDistribution() domain.ScoreBuckets {
	return measuring.BucketByScore(s.leadRepository.ListLeads())
}

// UpdateLeadScore troca apenas o score; qualquer valor válido é aceito a partir de qualquer outro
func (s *Service) UpdateLeadScore(leadID string, score domain.LeadScore) (*domain.Lead, error) {
	if leadID == "" {
		return nil, NewLeadError(ErrLeadIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if !score.IsValid() {
		return nil, NewLeadError(ErrInvalidScore, apiErrors.ErrInvalidEnumValue, leadID, string(score))
	}

	found := s.leadRepository.UpdateScore(leadID, score)
	return s.afterMutation(leadID, "score", string(score), found)
}

func (s *Service) UpdateLeadStatus(leadID string, status domain.LeadStatus) (*domain.Lead, error) {
	if leadID == "" {
		return nil, NewLeadError(ErrLeadIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if !status.IsValid() {
		return nil, NewLeadError(ErrInvalidStatus, apiErrors.ErrInvalidEnumValue, leadID, string(status))
	}

	found := s.leadRepository.UpdateStatus(leadID, status)
	return s.afterMutation(leadID, "status", string(status), found)
}

func (s *Service) afterMutation(leadID, field, value string, found bool) (*domain.Lead, error) {
	s.metrics.EntityMutated("lead", field, found)

	if !found {
		logrus.WithFields(logrus.Fields{
			"lead_id": leadID,
			field:     value,
		}).Warn("Lead não encontrado, nada foi alterado")
		return nil, NewLeadError(ErrLeadNotFound, apiErrors.ErrResourceNotFound, leadID, "")
	}

	logrus.WithFields(logrus.Fields{
		"lead_id": leadID,
		field:     value,
	}).Info("Lead atualizado")

	return s.GetLead(leadID)
}
