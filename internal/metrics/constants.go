package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Pipeline metric names
const (
	MetricNameDecodeRecordsTotal     = "decode_records_total"
	MetricNameDecodeRecordsDropped   = "decode_records_dropped_total"
	MetricNameUnresolvedPlaceholders = "template_unresolved_placeholders_total"
	MetricNameBuildLoadsTotal        = "build_loads_total"
	MetricNameBuildLoadDuration      = "build_load_duration_seconds"
	MetricNameLocalizationCacheHits   = "localization_cache_hits_total"
	MetricNameLocalizationCacheMisses = "localization_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Pipeline metric help text
const (
	HelpTextDecodeRecordsTotal     = "Total number of raw records decoded"
	HelpTextDecodeRecordsDropped   = "Total number of raw records dropped during decoding"
	HelpTextUnresolvedPlaceholders = "Total number of template placeholders left unresolved"
	HelpTextBuildLoadsTotal        = "Total number of build loads"
	HelpTextBuildLoadDuration      = "Build load latency in seconds"
	HelpTextLocalizationCacheHits   = "Total number of localization table cache hits"
	HelpTextLocalizationCacheMisses = "Total number of localization table cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelResult = "result"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BuildLoadBuckets covers build loads, which read and parse several large
// JSON files from disk.
var BuildLoadBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
