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

// Draw Metrics
var (
	RollsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsStarted,
			Help: HelpTextRollsStarted,
		},
		[]string{LabelMode},
	)

	PreviewTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreviewTicks,
			Help: HelpTextPreviewTicks,
		},
	)

	WinnersCommitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWinnersCommitted,
			Help: HelpTextWinnersCommitted,
		},
		[]string{LabelTier, LabelMode},
	)

	TierAdvances = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTierAdvances,
			Help: HelpTextTierAdvances,
		},
	)

	DrawsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawsCompleted,
			Help: HelpTextDrawsCompleted,
		},
	)

	Resets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResets,
			Help: HelpTextResets,
		},
	)

	IntegrityViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntegrityViolations,
			Help: HelpTextIntegrityViolations,
		},
		[]string{LabelOperation},
	)

	RemainingQuota = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRemainingQuota,
			Help: HelpTextRemainingQuota,
		},
	)

	TotalWinners = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTotalWinners,
			Help: HelpTextTotalWinners,
		},
	)
)

// Infrastructure Metrics
var (
	SnapshotSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSaveFailures,
			Help: HelpTextSnapshotSaveFailures,
		},
	)

	SnapshotSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSnapshotSaveDuration,
			Help:    HelpTextSnapshotSaveDuration,
			Buckets: SaveLatencyBuckets,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	AnnouncementsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnnouncementsSent,
			Help: HelpTextAnnouncementsSent,
		},
	)

	AnnouncementsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnnouncementsFailed,
			Help: HelpTextAnnouncementsFailed,
		},
	)
)
