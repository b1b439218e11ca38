package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	RateLimitRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitRejects,
			Help: HelpTextRateLimitRejects,
		},
		[]string{LabelLimiter},
	)
)

// Business Metrics
var (
	LinesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinesCreated,
			Help: HelpTextLinesCreated,
		},
	)

	LinesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinesDeleted,
			Help: HelpTextLinesDeleted,
		},
	)

	InstanceMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInstanceMutations,
			Help: HelpTextInstanceMutations,
		},
		[]string{LabelOperation},
	)

	SummariesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSummariesComputed,
			Help: HelpTextSummariesComputed,
		},
		[]string{LabelSource},
	)

	SummaryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSummaryCacheLookups,
			Help: HelpTextSummaryCacheLookups,
		},
		[]string{LabelResult},
	)

	SummaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSummaryDuration,
			Help:    HelpTextSummaryDuration,
			Buckets: SummaryLatencyBuckets,
		},
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEntries,
			Help: HelpTextCatalogEntries,
		},
		[]string{LabelKind},
	)
)

// RecordCatalog publishes catalog sizes
func RecordCatalog(items, machines, recipes int) {
	CatalogEntries.WithLabelValues(KindItems).Set(float64(items))
	CatalogEntries.WithLabelValues(KindMachines).Set(float64(machines))
	CatalogEntries.WithLabelValues(KindRecipes).Set(float64(recipes))
}
