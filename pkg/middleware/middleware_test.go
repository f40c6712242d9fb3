package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{name: "origem permitida", method: http.MethodGet, origin: "http://localhost:3000", wantStatus: http.StatusTeapot, wantAllowed: true},
		{name: "origem desconhecida", method: http.MethodGet, origin: "http://evil.test", wantStatus: http.StatusTeapot, wantAllowed: false},
		{name: "preflight responde sem chamar o handler", method: http.MethodOptions, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/leads", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	log.SetupTestLogger()
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	handler := RequestMetrics(metrics.NewRecorder())(LoggingMiddleware()(next))
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leads/x", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, correlationID)
}
