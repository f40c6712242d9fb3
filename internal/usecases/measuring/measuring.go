// Package measuring calcula as métricas derivadas de campanhas e leads.
// Nenhuma função aqui falha: divisão por zero resulta em 0.
package measuring

import (
	"sort"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/pkg/utils"
)

// Rate retorna part/whole em porcentagem, 0 quando whole é zero
func Rate(part, whole int) float64 {
	return utils.Percentage(float64(part), float64(whole))
}

// ROI retorna (revenue-cost)/cost em porcentagem, 0 quando cost é zero
func ROI(revenue, cost float64) float64 {
	return utils.Percentage(revenue-cost, cost)
}

// Aggregate soma os contadores campo a campo e deriva as taxas globais das somas,
// nunca da média das taxas por campanha
func Aggregate(metrics []domain.CampaignMetrics) domain.AggregateMetrics {
	agg := domain.AggregateMetrics{Campaigns: len(metrics)}

	for _, m := range metrics {
		agg.Sent += m.Sent
		agg.Delivered += m.Delivered
		agg.Opened += m.Opened
		agg.Clicked += m.Clicked
		agg.Replied += m.Replied
		agg.Bounced += m.Bounced
		agg.Unsubscribed += m.Unsubscribed
		agg.Conversions += m.Conversions
		agg.Cost += m.Cost
		agg.Revenue += m.Revenue
	}

	agg.OpenRate = Rate(agg.Opened, agg.Sent)
	agg.ClickRate = Rate(agg.Clicked, agg.Sent)
	agg.ConversionRate = Rate(agg.Conversions, agg.Sent)
	agg.ROI = ROI(agg.Revenue, agg.Cost)

	return agg
}

// AggregateCampaigns é um atalho para Aggregate sobre as métricas das campanhas
func AggregateCampaigns(campaigns []*domain.Campaign) domain.AggregateMetrics {
	metrics := make([]domain.CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		metrics = append(metrics, c.Metrics)
	}
	return Aggregate(metrics)
}

// BucketByScore conta os leads por score. Hot+Warm+Cold sempre fecha com Total.
func BucketByScore(leads []*domain.Lead) domain.ScoreBuckets {
	buckets := domain.ScoreBuckets{Total: len(leads)}
	for _, l := range leads {
		switch l.Score {
		case domain.LeadScoreHot:
			buckets.Hot++
		case domain.LeadScoreWarm:
			buckets.Warm++
		case domain.LeadScoreCold:
			buckets.Cold++
		}
	}
	return buckets
}

// DeriveRates recalcula as taxas a partir dos contadores.
// Sem envios (plataformas de anúncio) as taxas informadas pela plataforma são mantidas.
// O ROI é sempre recalculado.
func DeriveRates(m domain.CampaignMetrics) domain.CampaignMetrics {
	if m.Sent > 0 {
		m.OpenRate = utils.RoundWithTwoDecimalPlace(Rate(m.Opened, m.Sent))
		m.ClickRate = utils.RoundWithTwoDecimalPlace(Rate(m.Clicked, m.Sent))
		m.ReplyRate = utils.RoundWithTwoDecimalPlace(Rate(m.Replied, m.Sent))
		m.ConversionRate = utils.RoundWithTwoDecimalPlace(Rate(m.Conversions, m.Sent))
	}
	m.ROI = utils.RoundWithTwoDecimalPlace(ROI(m.Revenue, m.Cost))
	return m
}

type channelTotals struct {
	label       string
	revenue     float64
	conversions int
}

// RankChannels ordena as plataformas pela receita somada (desempate por conversões e nome)
// e retorna os nomes de exibição das n primeiras. n <= 0 retorna todas.
func RankChannels(campaigns []*domain.Campaign, n int) []string {
	byPlatform := map[domain.Platform]*channelTotals{}
	for _, c := range campaigns {
		totals, ok := byPlatform[c.Platform]
		if !ok {
			totals = &channelTotals{label: c.Platform.Label()}
			byPlatform[c.Platform] = totals
		}
		totals.revenue += c.Metrics.Revenue
		totals.conversions += c.Metrics.Conversions
	}

	ranked := make([]*channelTotals, 0, len(byPlatform))
	for _, t := range byPlatform {
		ranked = append(ranked, t)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].revenue != ranked[j].revenue {
			return ranked[i].revenue > ranked[j].revenue
		}
		if ranked[i].conversions != ranked[j].conversions {
			return ranked[i].conversions > ranked[j].conversions
		}
		return ranked[i].label < ranked[j].label
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	labels := make([]string, 0, len(ranked))
	for _, t := range ranked {
		labels = append(labels, t.label)
	}
	return labels
}

// BestCampaign retorna a campanha com maior ROI, nil quando a lista está vazia
func BestCampaign(campaigns []*domain.Campaign) *domain.Campaign {
	var best *domain.Campaign
	bestROI := 0.0
	for _, c := range campaigns {
		roi := ROI(c.Metrics.Revenue, c.Metrics.Cost)
		if best == nil || roi > bestROI {
			best = c
			bestROI = roi
		}
	}
	return best
}
