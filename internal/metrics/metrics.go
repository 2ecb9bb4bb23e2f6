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
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RoundsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsCreated,
			Help: HelpTextRoundsCreated,
		},
	)

	RoundsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsResolved,
			Help: HelpTextRoundsResolved,
		},
		[]string{LabelOutcome},
	)

	StakesPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStakesPlaced,
			Help: HelpTextStakesPlaced,
		},
		[]string{LabelSide},
	)

	AmountStaked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAmountStaked,
			Help: HelpTextAmountStaked,
		},
		[]string{LabelSide},
	)

	WinsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinsClaimed,
			Help: HelpTextWinsClaimed,
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
	)

	FeesRetained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeesRetained,
			Help: HelpTextFeesRetained,
		},
	)
)
