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

// Business metric names
const (
	MetricNameRoundsCreated  = "rounds_created_total"
	MetricNameRoundsResolved = "rounds_resolved_total"
	MetricNameStakesPlaced   = "stakes_placed_total"
	MetricNameAmountStaked   = "amount_staked_total"
	MetricNameWinsClaimed    = "wins_claimed_total"
	MetricNameAmountPaidOut  = "amount_paid_out_total"
	MetricNameFeesRetained   = "fees_retained_total"
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

// Business metric help text
const (
	HelpTextRoundsCreated  = "Total number of betting rounds created"
	HelpTextRoundsResolved = "Total number of betting rounds resolved"
	HelpTextStakesPlaced   = "Total number of stakes placed"
	HelpTextAmountStaked   = "Total value staked across all rounds"
	HelpTextWinsClaimed    = "Total number of payouts claimed"
	HelpTextAmountPaidOut  = "Total value paid out to claimants"
	HelpTextFeesRetained   = "Total creator fees retained from resolved rounds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelSide    = "side"
	LabelOutcome = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
