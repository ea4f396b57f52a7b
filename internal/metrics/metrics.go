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

	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)
)

// Crafting Metrics
var (
	CraftApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftApplications,
			Help: HelpTextCraftApplications,
		},
		[]string{LabelCurrency, LabelOutcome},
	)

	CraftDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCraftDuration,
			Help:    HelpTextCraftDuration,
			Buckets: CraftLatencyBuckets,
		},
		[]string{LabelCurrency},
	)

	SimulationTrials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationTrials,
			Help: HelpTextSimulationTrials,
		},
	)

	SimulationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationRuns,
			Help: HelpTextSimulationRuns,
		},
		[]string{LabelCurrency},
	)

	BreakdownCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBreakdownCacheHits,
			Help: HelpTextBreakdownCacheHits,
		},
	)

	BreakdownCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBreakdownCacheMiss,
			Help: HelpTextBreakdownCacheMiss,
		},
	)

	CatalogModifiers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogModifiers,
			Help: HelpTextCatalogModifiers,
		},
	)

	HistoryWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHistoryWriteFailure,
			Help: HelpTextHistoryWriteFailure,
		},
	)
)
