package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

func ListReports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := domain.ReportFilters{Search: r.URL.Query().Get("search")}
		writeJSON(w, r, http.StatusOK, service.ListReports(filters))
	})
}

func GenerateReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: gerando relatório")

		resp, err := service.Generate()
		if err != nil {
			logger.WithError(err).Error("reports: erro ao gerar relatório")
			writeServiceError(w, err, "Erro ao gerar relatório")
			return
		}

		writeJSON(w, r, http.StatusCreated, resp)
	})
}

func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.GetReport(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar relatório")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
