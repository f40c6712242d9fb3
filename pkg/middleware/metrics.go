package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

// RequestMetrics mede a duração das requisições por método e status
func RequestMetrics(recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := newStatusRecorder(w)

			next.ServeHTTP(srw, r)

			recorder.ObserveRequest(r.Method, srw.statusCode, time.Since(start))
		})
	}
}
