package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
)

func ListUploads(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := domain.UploadFilters{
			Status:   query.Get("status"),
			Platform: query.Get("platform"),
		}

		writeJSON(w, r, http.StatusOK, service.ListUploads(filters))
	})
}

func RecordUpload(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RecordUploadRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.RecordUpload(req)
		if err != nil {
			logger.WithError(err).WithField("file_name", req.FileName).Warn("uploads: importação recusada")
			writeServiceError(w, err, "Erro ao registrar importação")
			return
		}

		logger.WithField("upload_id", resp.ID).Info("uploads: importação registrada")
		writeJSON(w, r, http.StatusAccepted, resp)
	})
}

func DeleteUpload(service uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteUpload(id); err != nil {
			writeServiceError(w, err, "Erro ao remover importação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
