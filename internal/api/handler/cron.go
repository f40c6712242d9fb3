package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

const (
	CronJobTypeAnalysis = "analysis"
	CronJobTypeAll      = "all"
)

// ManualJob é um agendamento que também pode ser disparado sob demanda
type ManualJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AutomaticAnalysisService ManualJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeAnalysis, CronJobTypeAll:
			if services.AutomaticAnalysisService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise automática não disponível", nil)
				return
			}
			services.AutomaticAnalysisService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: analysis, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AutomaticAnalysisService != nil {
			status[CronJobTypeAnalysis] = services.AutomaticAnalysisService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
