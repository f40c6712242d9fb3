// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_leads"

// Recorder agrupa as métricas registradas em um registry próprio
type Recorder struct {
	registry *prometheus.Registry

	reportsGenerated    prometheus.Counter
	uploadsRecorded     *prometheus.CounterVec
	uploadsCompleted    prometheus.Counter
	uploadsCancelled    prometheus.Counter
	entityMutations     *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Relatórios de análise gerados.",
		}),
		uploadsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_recorded_total",
			Help:      "Arquivos importados por plataforma.",
		}, []string{"platform"}),
		uploadsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_completed_total",
			Help:      "Importações que terminaram o processamento.",
		}),
		uploadsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_cancelled_total",
			Help:      "Processamentos cancelados pela remoção da importação.",
		}),
		entityMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_mutations_total",
			Help:      "Alterações de score e status por entidade e campo.",
		}, []string{"entity", "field", "found"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status_code"}),
	}

	r.registry.MustRegister(
		r.reportsGenerated,
		r.uploadsRecorded,
		r.uploadsCompleted,
		r.uploadsCancelled,
		r.entityMutations,
		r.httpRequestDuration,
		collectors.NewGoCollector(),
	)

	return r
}

// Registry permite inspecionar as métricas em testes
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) ReportGenerated() {
	if r == nil {
		return
	}
	r.reportsGenerated.Inc()
}

func (r *Recorder) UploadRecorded(platform string) {
	if r == nil {
		return
	}
	r.uploadsRecorded.WithLabelValues(platform).Inc()
}

func (r *Recorder) UploadCompleted() {
	if r == nil {
		return
	}
	r.uploadsCompleted.Inc()
}

func (r *Recorder) UploadCancelled() {
	if r == nil {
		return
	}
	r.uploadsCancelled.Inc()
}

func (r *Recorder) EntityMutated(entity, field string, found bool) {
	if r == nil {
		return
	}
	r.entityMutations.WithLabelValues(entity, field, strconv.FormatBool(found)).Inc()
}

func (r *Recorder) ObserveRequest(method string, statusCode int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequestDuration.WithLabelValues(method, strconv.Itoa(statusCode)).Observe(elapsed.Seconds())
}
