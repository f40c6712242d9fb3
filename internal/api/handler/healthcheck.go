package handler

import (
	"net/http"
	"time"
)

// StoreStats informa quantos registros de cada entidade estão carregados
type StoreStats func() map[string]int

func HealthcheckHandler(stats StoreStats) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if stats != nil {
			body["store"] = stats()
		}

		writeJSON(w, r, http.StatusOK, body)
	})
}
