package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameAuthFailures         = "http_auth_failures_total"
	MetricNameRateLimited          = "http_rate_limited_total"
)

// Crafting metric names
const (
	MetricNameCraftApplications   = "crafting_applications_total"
	MetricNameCraftDuration       = "crafting_apply_duration_seconds"
	MetricNameSimulationTrials    = "crafting_simulation_trials_total"
	MetricNameSimulationRuns      = "crafting_simulation_runs_total"
	MetricNameBreakdownCacheHits  = "crafting_breakdown_cache_hits_total"
	MetricNameBreakdownCacheMiss  = "crafting_breakdown_cache_misses_total"
	MetricNameCatalogModifiers    = "crafting_catalog_modifiers"
	MetricNameHistoryWriteFailure = "crafting_history_write_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthFailures         = "Requests rejected for a missing or wrong API key"
	HelpTextRateLimited          = "Requests rejected by the per-client rate limit"
)

// Crafting metric help text
const (
	HelpTextCraftApplications   = "Total number of currency applications by outcome"
	HelpTextCraftDuration       = "Time spent applying a currency in seconds"
	HelpTextSimulationTrials    = "Total number of simulated currency applications"
	HelpTextSimulationRuns      = "Total number of Monte Carlo simulation runs"
	HelpTextBreakdownCacheHits  = "Available modifier breakdowns served from cache"
	HelpTextBreakdownCacheMiss  = "Available modifier breakdowns computed from the pool"
	HelpTextCatalogModifiers    = "Number of modifiers in the loaded catalog"
	HelpTextHistoryWriteFailure = "Craft history records that could not be stored"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCurrency = "currency"
	LabelOutcome  = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CraftLatencyBuckets covers a single apply, which is expected well under a millisecond
var CraftLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01}
