package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

func ListLeads(service lead.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.LeadFilters{
			Search: query.Get("search"),
			Score:  query.Get("score"),
			Status: query.Get("status"),
		}

		writeJSON(w, r, http.StatusOK, service.ListLeads(filters))
	})
}

func GetLeadDistribution(service lead.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetScoreDistribution())
	})
}

func GetLead(service lead.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.GetLead(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar lead")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func UpdateLeadScore(service lead.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateLeadScoreRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.UpdateLeadScore(id, req.Score)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("lead_id", id).Warn("leads: falha ao atualizar score")
			writeServiceError(w, err, "Erro ao atualizar score do lead")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func UpdateLeadStatus(service lead.Leader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateLeadStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.UpdateLeadStatus(id, req.Status)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("lead_id", id).Warn("leads: falha ao atualizar status")
			writeServiceError(w, err, "Erro ao atualizar status do lead")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
