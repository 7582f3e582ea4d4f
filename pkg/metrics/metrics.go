package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa as métricas HTTP e de negócio do pipeline de anúncios
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPInFlight         prometheus.Gauge
	WorkflowCalls        *prometheus.CounterVec
	WorkflowCallDuration prometheus.Histogram
	StatusCallbacks      *prometheus.CounterVec
	AdsByStatus          *prometheus.GaugeVec
	StatusSyncDuration   prometheus.Histogram
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Default retorna a instância única registrada no registry padrão
func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New registra as métricas no registerer informado. Testes usam um registry próprio.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP processadas",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Latência das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requisições HTTP em atendimento",
		}),
		WorkflowCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_webhook_calls_total",
				Help: "Total de chamadas ao webhook da automação por resultado",
			},
			[]string{"outcome"},
		),
		WorkflowCallDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "workflow_webhook_call_duration_seconds",
			Help:    "Duração das chamadas ao webhook da automação",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StatusCallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ad_status_callbacks_total",
				Help: "Total de callbacks de status recebidos por status e resultado",
			},
			[]string{"status", "outcome"},
		),
		AdsByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ads_by_status",
				Help: "Quantidade de anúncios por conta e status",
			},
			[]string{"ad_account_id", "status"},
		),
		StatusSyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ads_status_sync_duration_seconds",
			Help:    "Duração da sincronização das métricas de status",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveHTTPRequest registra uma requisição pela rota cadastrada, nunca pelo path concreto
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.HTTPRequests.With(labels).Inc()
	m.HTTPRequestDuration.With(labels).Observe(seconds)
}

func (m *Metrics) RecordWorkflowCall(outcome string, seconds float64) {
	if outcome == "" {
		outcome = "unknown"
	}
	m.WorkflowCalls.WithLabelValues(outcome).Inc()
	m.WorkflowCallDuration.Observe(seconds)
}

func (m *Metrics) RecordStatusCallback(status, outcome string) {
	m.StatusCallbacks.WithLabelValues(status, outcome).Inc()
}

// SetAdsByStatus publica a contagem de uma conta para um status
func (m *Metrics) SetAdsByStatus(accountID, status string, count int) {
	m.AdsByStatus.WithLabelValues(accountID, status).Set(float64(count))
}

func (m *Metrics) ObserveStatusSync(seconds float64) {
	m.StatusSyncDuration.Observe(seconds)
}
