package domain

import "time"

// FilterAll é o valor sentinela que desativa um filtro de enum
const FilterAll = "all"

type CampaignFilters struct {
	Search   string
	Platform string
	Status   string
}

type LeadFilters struct {
	Search string
	Score  string
	Status string
}

type ReportFilters struct {
	Search string
}

type UploadFilters struct {
	Status   string
	Platform string
}

type HistoryPeriod string

const (
	HistoryPeriod7Days  HistoryPeriod = "7d"
	HistoryPeriod30Days HistoryPeriod = "30d"
	HistoryPeriod90Days HistoryPeriod = "90d"
	HistoryPeriodAll    HistoryPeriod = "all"
)

// Cutoff retorna a data mínima para o período a partir de now.
// Retorna zero quando o período não restringe datas.
func (p HistoryPeriod) Cutoff(now time.Time) time.Time {
	switch p {
	case HistoryPeriod7Days:
		return now.AddDate(0, 0, -7)
	case HistoryPeriod30Days:
		return now.AddDate(0, 0, -30)
	case HistoryPeriod90Days:
		return now.AddDate(0, 0, -90)
	}
	return time.Time{}
}

type HistoryFilters struct {
	Search string
	Type   string
	Period HistoryPeriod
}
