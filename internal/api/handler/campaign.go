package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

func ListCampaigns(service campaign.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.CampaignFilters{
			Search:   query.Get("search"),
			Platform: query.Get("platform"),
			Status:   query.Get("status"),
		}

		writeJSON(w, r, http.StatusOK, service.ListCampaigns(filters))
	})
}

func GetCampaignSummary(service campaign.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetMetricsSummary())
	})
}

func GetCampaign(service campaign.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.GetCampaign(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func UpdateCampaignStatus(service campaign.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateCampaignStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.UpdateCampaignStatus(id, req.Status)
		if err != nil {
			logger.WithError(err).WithField("campaign_id", id).Warn("campaigns: falha ao atualizar status")
			writeServiceError(w, err, "Erro ao atualizar status da campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
