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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Draw metric names
const (
	MetricNameRollsStarted         = "draw_rolls_started_total"
	MetricNamePreviewTicks         = "draw_preview_ticks_total"
	MetricNameWinnersCommitted     = "draw_winners_committed_total"
	MetricNameTierAdvances         = "draw_tier_advances_total"
	MetricNameDrawsCompleted       = "draw_completed_total"
	MetricNameResets               = "draw_resets_total"
	MetricNameIntegrityViolations  = "draw_integrity_violations_total"
	MetricNameRemainingQuota       = "draw_remaining_quota"
	MetricNameTotalWinners         = "draw_total_winners"
	MetricNameSnapshotSaveFailures = "snapshot_save_failures_total"
	MetricNameSnapshotSaveDuration = "snapshot_save_duration_seconds"
	MetricNameSSEClients           = "sse_clients"
	MetricNameAnnouncementsSent    = "announcements_sent_total"
	MetricNameAnnouncementsFailed  = "announcements_failed_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Draw metric help text
const (
	HelpTextRollsStarted         = "Total number of rolls started"
	HelpTextPreviewTicks         = "Total number of preview ticks shown while rolling"
	HelpTextWinnersCommitted     = "Total number of winners committed to the ledger"
	HelpTextTierAdvances         = "Total number of prize tier advances"
	HelpTextDrawsCompleted       = "Total number of draws that filled every tier"
	HelpTextResets               = "Total number of confirmed resets"
	HelpTextIntegrityViolations  = "Total number of winner ledger integrity violations"
	HelpTextRemainingQuota       = "Remaining slots in the current prize tier"
	HelpTextTotalWinners         = "Winners in the ledger"
	HelpTextSnapshotSaveFailures = "Total number of failed snapshot saves"
	HelpTextSnapshotSaveDuration = "Snapshot save latency in seconds"
	HelpTextSSEClients           = "Currently connected live stream clients"
	HelpTextAnnouncementsSent    = "Total number of winner announcements delivered"
	HelpTextAnnouncementsFailed  = "Total number of winner announcements that failed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelMode      = "mode"
	LabelTier      = "tier"
	LabelOperation = "operation"
)

// Unmatched routes share one path label
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets covers 5ms to 10s
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	// SaveLatencyBuckets covers a local file write up to a slow remote database
	SaveLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Event metrics recorded"
)
