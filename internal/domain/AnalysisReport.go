package domain

import "time"

type ReportSummary struct {
	TotalLeads            int      `json:"total_leads" yaml:"total_leads"`
	HotLeads              int      `json:"hot_leads" yaml:"hot_leads"`
	WarmLeads             int      `json:"warm_leads" yaml:"warm_leads"`
	ColdLeads             int      `json:"cold_leads" yaml:"cold_leads"`
	ConversionRate        float64  `json:"conversion_rate" yaml:"conversion_rate"`
	TopPerformingChannels []string `json:"top_performing_channels" yaml:"top_performing_channels"`
}

// AnalysisReport é um snapshot imutável gerado a partir dos leads e campanhas
type AnalysisReport struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	CampaignID      string        `json:"campaign_id" yaml:"campaign_id"`
	DateGenerated   time.Time     `json:"date_generated" yaml:"date_generated"`
	Summary         ReportSummary `json:"summary" yaml:"summary"`
	Insights        []string      `json:"insights" yaml:"insights"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
}

func (r *AnalysisReport) Clone() *AnalysisReport {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Summary.TopPerformingChannels = append([]string(nil), r.Summary.TopPerformingChannels...)
	cp.Insights = append([]string(nil), r.Insights...)
	cp.Recommendations = append([]string(nil), r.Recommendations...)
	return &cp
}
