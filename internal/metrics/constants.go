package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRateLimitRejects     = "http_rate_limit_rejects_total"
)

// Business metric names
const (
	MetricNameLinesCreated        = "production_lines_created_total"
	MetricNameLinesDeleted        = "production_lines_deleted_total"
	MetricNameInstanceMutations   = "recipe_instance_mutations_total"
	MetricNameSummariesComputed   = "summaries_computed_total"
	MetricNameSummaryCacheLookups = "summary_cache_lookups_total"
	MetricNameSummaryDuration     = "summary_duration_seconds"
	MetricNameCatalogEntries      = "catalog_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRateLimitRejects     = "Requests rejected by a rate limiter"
)

// Business metric help text
const (
	HelpTextLinesCreated        = "Total number of production lines created"
	HelpTextLinesDeleted        = "Total number of production lines deleted"
	HelpTextInstanceMutations   = "Total number of recipe instance changes by operation"
	HelpTextSummariesComputed   = "Total number of production summaries computed"
	HelpTextSummaryCacheLookups = "Summary cache lookups by result"
	HelpTextSummaryDuration     = "Time spent computing a production summary in seconds"
	HelpTextCatalogEntries      = "Number of catalog entries by kind"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelSource    = "source"
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelLimiter   = "limiter"
)

// Label values
const (
	OperationAdd    = "add"
	OperationUpdate = "update"
	OperationRemove = "remove"
	OperationMove   = "move"

	SourceLine  = "line"
	SourceAdhoc = "adhoc"

	ResultHit  = "hit"
	ResultMiss = "miss"

	KindItems    = "items"
	KindMachines = "machines"
	KindRecipes  = "recipes"

	LimiterGlobal = "global"
	LimiterClient = "client"

	// UnmatchedRoute labels requests no route matched, keeping path cardinality bounded
	UnmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// SummaryLatencyBuckets are the histogram buckets for summary computation
var SummaryLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}
