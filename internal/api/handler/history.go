package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/history"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
)

var validPeriods = map[domain.HistoryPeriod]bool{
	domain.HistoryPeriod7Days:  true,
	domain.HistoryPeriod30Days: true,
	domain.HistoryPeriod90Days: true,
	domain.HistoryPeriodAll:    true,
}

func ListHistory(service history.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		period := domain.HistoryPeriod(query.Get("period"))
		if period == "" {
			period = domain.HistoryPeriodAll
		}
		if !validPeriods[period] {
			apiErrors.WriteError(w, apiErrors.ErrInvalidEnumValue, "Período inválido. Valores aceitos: 7d, 30d, 90d, all", nil)
			return
		}

		filters := domain.HistoryFilters{
			Search: query.Get("search"),
			Type:   query.Get("type"),
			Period: period,
		}

		writeJSON(w, r, http.StatusOK, service.ListHistory(filters))
	})
}
