package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-leads-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/history"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/lead"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/uploading"
)

func Healthcheck(stats StoreStats) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(stats),
		},
	}
}

// Metrics expõe o handler do Prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Campaigns(service campaign.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetCampaignSummary(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateCampaignStatus(service),
		},
	}
}

func Leads(service lead.Leader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: ListLeads(service),
		},
		{
			Path:    "/v1/dashboard/lead-distribution",
			Method:  http.MethodGet,
			Handler: GetLeadDistribution(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodGet,
			Handler: GetLead(service),
		},
		{
			Path:    "/v1/leads/:id/score",
			Method:  http.MethodPut,
			Handler: UpdateLeadScore(service),
		},
		{
			Path:    "/v1/leads/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateLeadStatus(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReports(service),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: GenerateReport(service),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func Uploads(service uploading.Uploader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/uploads",
			Method:  http.MethodGet,
			Handler: ListUploads(service),
		},
		{
			Path:    "/v1/uploads",
			Method:  http.MethodPost,
			Handler: RecordUpload(service),
		},
		{
			Path:    "/v1/uploads/:id",
			Method:  http.MethodDelete,
			Handler: DeleteUpload(service),
		},
	}
}

func History(service history.Historian) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: ListHistory(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
