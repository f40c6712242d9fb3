// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"time"

	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

//go:generate mockgen -source=campaign.go -destination=mocks/mock_campaign.go -package=mocks

type CampaignRepository interface {
	ListCampaigns() []*domain.Campaign
	GetCampaignByID(campaignID string) (*domain.Campaign, bool)
	// UpdateStatus troca o status e retorna o anterior; found=false quando o ID não existe
	UpdateStatus(campaignID string, status domain.CampaignStatus, updatedAt time.Time) (previous domain.CampaignStatus, found bool)
}

type campaignRepository struct {
	conn *memory.Connection
}

func NewCampaignRepository(conn *memory.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns() []*domain.Campaign {
	var campaigns []*domain.Campaign
	r.conn.View(func(d *memory.Dataset) {
		campaigns = make([]*domain.Campaign, 0, len(d.Campaigns))
		for _, c := range d.Campaigns {
			campaigns = append(campaigns, c.Clone())
		}
	})
	return campaigns
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, bool) {
	var campaign *domain.Campaign
	r.conn.View(func(d *memory.Dataset) {
		for _, c := range d.Campaigns {
			if c.ID == campaignID {
				campaign = c.Clone()
				return
			}
		}
	})
	return campaign, campaign != nil
}

func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus, updatedAt time.Time) (domain.CampaignStatus, bool) {
	var previous domain.CampaignStatus
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for _, c := range d.Campaigns {
			if c.ID == campaignID {
				previous = c.Status
				c.Status = status
				c.LastUpdated = updatedAt
				found = true
				return
			}
		}
	})
	return previous, found
}
