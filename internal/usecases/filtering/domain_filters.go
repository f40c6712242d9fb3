package filtering

import (
	"time"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

// Leads filtra por nome, sobrenome, email e empresa
func Leads(leads []*domain.Lead, f domain.LeadFilters) []*domain.Lead {
	return Apply(leads,
		Contains(f.Search,
			func(l *domain.Lead) *string { return l.FirstName },
			func(l *domain.Lead) *string { return l.LastName },
			Text(func(l *domain.Lead) string { return l.Email }),
			func(l *domain.Lead) *string { return l.Company },
		),
		Equals(f.Score, func(l *domain.Lead) domain.LeadScore { return l.Score }),
		Equals(f.Status, func(l *domain.Lead) domain.LeadStatus { return l.Status }),
	)
}

// Campaigns filtra pelo nome da campanha
func Campaigns(campaigns []*domain.Campaign, f domain.CampaignFilters) []*domain.Campaign {
	return Apply(campaigns,
		Contains(f.Search, Text(func(c *domain.Campaign) string { return c.Name })),
		Equals(f.Platform, func(c *domain.Campaign) domain.Platform { return c.Platform }),
		Equals(f.Status, func(c *domain.Campaign) domain.CampaignStatus { return c.Status }),
	)
}

// Reports filtra pelo título
func Reports(reports []*domain.AnalysisReport, f domain.ReportFilters) []*domain.AnalysisReport {
	return Apply(reports,
		Contains(f.Search, Text(func(r *domain.AnalysisReport) string { return r.Title })),
	)
}

// Uploads compara a plataforma pelo nome de exibição ou pelo identificador
func Uploads(uploads []*domain.FileUpload, f domain.UploadFilters) []*domain.FileUpload {
	platform := f.Platform
	if !IsAll(platform) {
		if p := domain.Platform(platform); p.IsUploadSource() {
			platform = p.Label()
		}
	}
	return Apply(uploads,
		Equals(f.Status, func(u *domain.FileUpload) domain.UploadStatus { return u.Status }),
		Equals(platform, func(u *domain.FileUpload) string { return u.Platform }),
	)
}

// History filtra por título, descrição, tipo e período relativo a now
func History(items []*domain.HistoryItem, f domain.HistoryFilters, now time.Time) []*domain.HistoryItem {
	return Apply(items,
		Contains(f.Search,
			Text(func(h *domain.HistoryItem) string { return h.Title }),
			Text(func(h *domain.HistoryItem) string { return h.Description }),
		),
		Equals(f.Type, func(h *domain.HistoryItem) domain.HistoryType { return h.Type }),
		Since(f.Period.Cutoff(now), func(h *domain.HistoryItem) time.Time { return h.Date }),
	)
}
