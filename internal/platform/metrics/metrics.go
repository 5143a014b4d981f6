package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	InquiriesSubmitted prometheus.Counter
	InquiriesRetrieved prometheus.Counter
	InquiriesCancelled prometheus.Counter
	ProviderFailures   *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	RendersTotal       *prometheus.CounterVec
	RenderFailures     *prometheus.CounterVec
	RenderLatency      *prometheus.HistogramVec
	EndpointLatency    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		InquiriesSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_inquiries_submitted_total",
			Help: "Total number of inquiries submitted to the provider",
		}),
		InquiriesRetrieved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_inquiries_retrieved_total",
			Help: "Total number of inquiries retrieved from the provider",
		}),
		InquiriesCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_inquiries_cancelled_total",
			Help: "Total number of inquiries cancelled",
		}),
		ProviderFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vetgate_provider_failures_total",
			Help: "Total number of provider call failures, labeled by operation",
		}, []string{"operation"}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_validation_failures_total",
			Help: "Total number of inquiry requests rejected by validation",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_inquiry_cache_hits_total",
			Help: "Total number of inquiry cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vetgate_inquiry_cache_misses_total",
			Help: "Total number of inquiry cache misses",
		}),
		RendersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vetgate_report_renders_total",
			Help: "Total number of report renders, labeled by backend",
		}, []string{"backend"}),
		RenderFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vetgate_report_render_failures_total",
			Help: "Total number of failed report renders, labeled by backend and reason",
		}, []string{"backend", "reason"}),
		RenderLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetgate_report_render_latency_seconds",
			Help:    "Latency of report rendering in seconds, labeled by backend",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetgate_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) IncrementInquiriesSubmitted() {
	m.InquiriesSubmitted.Inc()
}

func (m *Metrics) IncrementInquiriesRetrieved() {
	m.InquiriesRetrieved.Inc()
}

func (m *Metrics) IncrementInquiriesCancelled() {
	m.InquiriesCancelled.Inc()
}

func (m *Metrics) IncrementProviderFailures(operation string) {
	m.ProviderFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementValidationFailures() {
	m.ValidationFailures.Inc()
}

func (m *Metrics) IncrementCacheHits() {
	m.CacheHits.Inc()
}

func (m *Metrics) IncrementCacheMisses() {
	m.CacheMisses.Inc()
}

func (m *Metrics) IncrementRenders(backend string) {
	m.RendersTotal.WithLabelValues(backend).Inc()
}

func (m *Metrics) IncrementRenderFailures(backend, reason string) {
	m.RenderFailures.WithLabelValues(backend, reason).Inc()
}

// ObserveRenderLatency records the render duration for a given backend
func (m *Metrics) ObserveRenderLatency(backend string, durationSeconds float64) {
	m.RenderLatency.WithLabelValues(backend).Observe(durationSeconds)
}

// ObserveEndpointLatency records the latency for a given endpoint
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
