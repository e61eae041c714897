package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider call outcomes used as metric label values.
const (
	OutcomeOK        = "ok"
	OutcomeEmpty     = "empty"
	OutcomeAuthError = "auth_error"
	OutcomeUpstream  = "upstream_error"
	OutcomeParse     = "parse_error"
)

type Metrics struct {
	SearchesTotal         *prometheus.CounterVec
	ProviderRequestsTotal *prometheus.CounterVec
	ProviderLatency       *prometheus.HistogramVec
	TokenRefreshesTotal   prometheus.Counter
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	Registry              *prometheus.Registry
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trip_searches_total",
			Help: "Searches served, by kind",
		}, []string{"kind"}),
		ProviderRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trip_provider_requests_total",
			Help: "Provider calls, by provider and outcome",
		}, []string{"provider", "outcome"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trip_provider_latency_seconds",
			Help:    "Provider call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		TokenRefreshesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trip_token_refreshes_total",
			Help: "OAuth token exchanges performed",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		Registry: reg,
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.ProviderRequestsTotal,
		m.ProviderLatency,
		m.TokenRefreshesTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

func (m *Metrics) IncSearch(kind string) {
	m.SearchesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncProviderRequest(provider, outcome string) {
	m.ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) ObserveProviderLatency(provider string, seconds float64) {
	m.ProviderLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *Metrics) IncTokenRefresh() {
	m.TokenRefreshesTotal.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
