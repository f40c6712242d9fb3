package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/infrastructure/seed"
	"github.com/vfg2006/campaign-leads-api/internal/api/handler"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/scheduler"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/history"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
	"github.com/vfg2006/campaign-leads-api/pkg/log"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	dataset, err := seed.Load("")
	require.NoError(t, err)
	conn := memory.NewConnection(dataset)

	cfg := &config.Config{
		Server:            config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
		Upload:            config.Upload{ProcessingDelay: time.Hour, MaxFileSizeMB: 10},
		Report:            config.Report{TopChannels: 2},
		AutomaticAnalysis: config.AutomaticAnalysis{CronSchedule: "0 2 * * *"},
	}

	campaignRepo := repository.NewCampaignRepository(conn)
	leadRepo := repository.NewLeadRepository(conn)
	reportRepo := repository.NewReportRepository(conn)
	uploadRepo := repository.NewUploadRepository(conn)
	historyRepo := repository.NewHistoryRepository(conn)

	recorder := metrics.NewRecorder()
	deferred := scheduler.NewDeferredTasks()
	t.Cleanup(deferred.Stop)

	reportService := reporting.NewService(cfg, reportRepo, leadRepo, campaignRepo, historyRepo, recorder)

	return NewHandler(cfg, Services{
		Campaigns: campaign.NewService(campaignRepo, leadRepo, historyRepo, recorder),
		Leads:     lead.NewService(leadRepo, recorder),
		Reports:   reportService,
		Uploads:   uploading.NewService(cfg, uploadRepo, historyRepo, deferred, recorder),
		History:   history.NewService(historyRepo),
		CronJobs: handler.CronJobServices{
			AutomaticAnalysisService: scheduler.NewAutomaticAnalysisService(reportService, historyRepo, cfg),
		},
		StoreStats: conn.Stats,
	}, recorder)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Campaigns(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/campaigns?platform=all&search=ads", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var campaigns []domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
	assert.Len(t, campaigns, 2)

	rec = do(t, h, http.MethodGet, "/v1/dashboard/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.CampaignSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 102, summary.Totals.Conversions)
	assert.InDelta(t, 2.04, summary.Totals.ConversionRate, 1e-9)
	assert.Equal(t, domain.ScoreBuckets{Hot: 1, Warm: 1, Cold: 1, Total: 3}, summary.Distribution)

	rec = do(t, h, http.MethodPut, "/v1/campaigns/2/status", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, domain.CampaignStatusPaused, updated.Status)

	rec = do(t, h, http.MethodPut, "/v1/campaigns/404/status", `{"status":"paused"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")

	rec = do(t, h, http.MethodPut, "/v1/campaigns/1/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_004")

	rec = do(t, h, http.MethodPut, "/v1/campaigns/1/status", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Leads(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/leads?status=qualified", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var leads []domain.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "1", leads[0].ID)

	rec = do(t, h, http.MethodPut, "/v1/leads/2/status", `{"status":"qualified"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/leads?status=qualified", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 2)

	rec = do(t, h, http.MethodPut, "/v1/leads/3/score", `{"score":"hot"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/dashboard/lead-distribution", "")
	var buckets domain.ScoreBuckets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	assert.Equal(t, domain.ScoreBuckets{Hot: 2, Warm: 1, Cold: 0, Total: 3}, buckets)

	rec = do(t, h, http.MethodGet, "/v1/leads/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Reports(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/v1/reports", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var report domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, strings.HasPrefix(report.ID, "report-"))
	assert.Equal(t, 3, report.Summary.TotalLeads)
	assert.Equal(t, []string{"Google Ads", "Meta Ads"}, report.Summary.TopPerformingChannels)

	rec = do(t, h, http.MethodGet, "/v1/reports", "")
	var reports []domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, report.ID, reports[0].ID)

	rec = do(t, h, http.MethodGet, "/v1/reports/"+report.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/history?type=report", "")
	assert.Contains(t, rec.Body.String(), report.ID)
}

func TestServer_Uploads(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/v1/uploads", `{"file_name":"lemlist_jan2025.csv","file_size":1024,"platform":"lemlist"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var upload domain.FileUpload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upload))
	assert.Equal(t, domain.UploadStatusProcessing, upload.Status)
	assert.Equal(t, "Lemlist", upload.Platform)

	rec = do(t, h, http.MethodGet, "/v1/uploads?status=processing", "")
	var uploads []domain.FileUpload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploads))
	assert.Len(t, uploads, 2)

	rec = do(t, h, http.MethodDelete, "/v1/uploads/"+upload.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/uploads/"+upload.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/uploads", `{"file_name":"report.docx","platform":"brevo"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_History(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/history?type=upload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Import fichier Lemlist", items[0]["title"])

	rec = do(t, h, http.MethodGet, "/v1/history?period=1y", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CronAndInfra(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis")

	rec = do(t, h, http.MethodPost, "/v1/cron/run/unknown", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health struct {
		Status string         `json:"status"`
		Store  map[string]int `json:"store"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 3, health.Store["leads"])

	rec = do(t, h, http.MethodGet, "/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_leads_http_request_duration_seconds")

	req := httptest.NewRequest(http.MethodOptions, "/v1/leads", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "http://localhost:5173", res.Header().Get("Access-Control-Allow-Origin"))
}
