package domain

import "time"

type Platform string

const (
	PlatformLemlist     Platform = "lemlist"
	PlatformBrevo       Platform = "brevo"
	PlatformGoogleAds   Platform = "google-ads"
	PlatformMetaAds     Platform = "meta-ads"
	PlatformLinkedInAds Platform = "linkedin-ads"
	PlatformOther       Platform = "other"
)

// platformLabels guarda os nomes exibidos para cada plataforma
var platformLabels = map[Platform]string{
	PlatformLemlist:     "Lemlist",
	PlatformBrevo:       "Brevo",
	PlatformGoogleAds:   "Google Ads",
	PlatformMetaAds:     "Meta Ads",
	PlatformLinkedInAds: "LinkedIn Ads",
	PlatformOther:       "Autre",
}

// IsValid indica se a plataforma pode ser usada em uma campanha.
// LinkedIn Ads só é aceito na importação de arquivos.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformLemlist, PlatformBrevo, PlatformGoogleAds, PlatformMetaAds, PlatformOther:
		return true
	}
	return false
}

// IsUploadSource indica se a plataforma aparece no formulário de importação
func (p Platform) IsUploadSource() bool {
	return p.IsValid() || p == PlatformLinkedInAds
}

// Label retorna o nome de exibição da plataforma, "Autre" quando desconhecida
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return platformLabels[PlatformOther]
}

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Platform    Platform        `json:"platform" yaml:"platform"`
	Status      CampaignStatus  `json:"status" yaml:"status"`
	DateCreated time.Time       `json:"date_created" yaml:"date_created"`
	LastUpdated time.Time       `json:"last_updated" yaml:"last_updated"`
	Metrics     CampaignMetrics `json:"metrics" yaml:"metrics"`
	Leads       []string        `json:"leads" yaml:"leads"` // IDs dos leads associados
}

// Clone retorna uma cópia independente da campanha
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Leads = append([]string(nil), c.Leads...)
	return &cp
}

// CampaignMetrics guarda os contadores brutos e as taxas em porcentagem.
// As taxas podem vir pré-calculadas da plataforma.
type CampaignMetrics struct {
	Sent           int     `json:"sent" yaml:"sent"`
	Delivered      int     `json:"delivered" yaml:"delivered"`
	Opened         int     `json:"opened" yaml:"opened"`
	Clicked        int     `json:"clicked" yaml:"clicked"`
	Replied        int     `json:"replied" yaml:"replied"`
	Bounced        int     `json:"bounced" yaml:"bounced"`
	Unsubscribed   int     `json:"unsubscribed" yaml:"unsubscribed"`
	Conversions    int     `json:"conversions" yaml:"conversions"`
	OpenRate       float64 `json:"open_rate" yaml:"open_rate"`
	ClickRate      float64 `json:"click_rate" yaml:"click_rate"`
	ReplyRate      float64 `json:"reply_rate" yaml:"reply_rate"`
	ConversionRate float64 `json:"conversion_rate" yaml:"conversion_rate"`
	Cost           float64 `json:"cost" yaml:"cost"`
	Revenue        float64 `json:"revenue" yaml:"revenue"`
	ROI            float64 `json:"roi" yaml:"roi"`
}

// AggregateMetrics representa a soma das métricas de várias campanhas
type AggregateMetrics struct {
	Campaigns      int     `json:"campaigns"`
	Sent           int     `json:"sent"`
	Delivered      int     `json:"delivered"`
	Opened         int     `json:"opened"`
	Clicked        int     `json:"clicked"`
	Replied        int     `json:"replied"`
	Bounced        int     `json:"bounced"`
	Unsubscribed   int     `json:"unsubscribed"`
	Conversions    int     `json:"conversions"`
	Cost           float64 `json:"cost"`
	Revenue        float64 `json:"revenue"`
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	ROI            float64 `json:"roi"`
}

type CampaignSummaryResponse struct {
	Totals       AggregateMetrics `json:"totals"`
	Distribution ScoreBuckets     `json:"lead_distribution"`
	ActiveCount  int              `json:"active_campaigns"`
}
