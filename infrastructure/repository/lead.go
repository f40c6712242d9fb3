package repository

import (
	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

//go:generate mockgen -source=lead.go -destination=mocks/mock_lead.go -package=mocks

type LeadRepository interface {
	ListLeads() []*domain.Lead
	GetLeadByID(leadID string) (*domain.Lead, bool)
	// UpdateScore e UpdateStatus não fazem nada quando o ID não existe
	UpdateScore(leadID string, score domain.LeadScore) bool
	UpdateStatus(leadID string, status domain.LeadStatus) bool
}

type leadRepository struct {
	conn *memory.Connection
}

func NewLeadRepository(conn *memory.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) ListLeads() []*domain.Lead {
	var leads []*domain.Lead
	r.conn.View(func(d *memory.Dataset) {
		leads = make([]*domain.Lead, 0, len(d.Leads))
		for _, l := range d.Leads {
			leads = append(leads, l.Clone())
		}
	})
	return leads
}

func (r *leadRepository) GetLeadByID(leadID string) (*domain.Lead, bool) {
	var lead *domain.Lead
	r.conn.View(func(d *memory.Dataset) {
		for _, l := range d.Leads {
			if l.ID == leadID {
				lead = l.Clone()
				return
			}
		}
	})
	return lead, lead != nil
}

func (r *leadRepository) UpdateScore(leadID string, score domain.LeadScore) bool {
	return r.update(leadID, func(l *domain.Lead) { l.Score = score })
}

func (r *leadRepository) UpdateStatus(leadID string, status domain.LeadStatus) bool {
	return r.update(leadID, func(l *domain.Lead) { l.Status = status })
}

func (r *leadRepository) update(leadID string, apply func(l *domain.Lead)) bool {
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for _, l := range d.Leads {
			if l.ID == leadID {
				apply(l)
				found = true
				return
			}
		}
	})
	return found
}
