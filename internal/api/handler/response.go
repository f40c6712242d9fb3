package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("response: erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		campaignErr *campaign.CampaignError
		leadErr     *lead.LeadError
		reportErr   *reporting.ReportError
		uploadErr   *uploading.UploadError
	)

	switch {
	case errors.As(err, &campaignErr):
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), detailsFor("campaign_id", campaignErr.CampaignID))
	case errors.As(err, &leadErr):
		apiErrors.WriteError(w, leadErr.Code, leadErr.Error(), detailsFor("lead_id", leadErr.LeadID))
	case errors.As(err, &reportErr):
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), detailsFor("report_id", reportErr.ReportID))
	case errors.As(err, &uploadErr):
		apiErrors.WriteError(w, uploadErr.Code, uploadErr.Error(), detailsFor("upload_id", uploadErr.UploadID))
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsFor(key, id string) map[string]string {
	if id == "" {
		return nil
	}
	return map[string]string{key: id}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
