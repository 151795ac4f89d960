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

// Pipeline Metrics
var (
	DecodeRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecodeRecordsTotal,
			Help: HelpTextDecodeRecordsTotal,
		},
		[]string{LabelKind},
	)

	DecodeRecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecodeRecordsDropped,
			Help: HelpTextDecodeRecordsDropped,
		},
		[]string{LabelKind},
	)

	UnresolvedPlaceholders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnresolvedPlaceholders,
			Help: HelpTextUnresolvedPlaceholders,
		},
	)

	BuildLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildLoadsTotal,
			Help: HelpTextBuildLoadsTotal,
		},
		[]string{LabelResult},
	)

	BuildLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBuildLoadDuration,
			Help:    HelpTextBuildLoadDuration,
			Buckets: BuildLoadBuckets,
		},
	)

	LocalizationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLocalizationCacheHits,
			Help: HelpTextLocalizationCacheHits,
		},
	)

	LocalizationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLocalizationCacheMisses,
			Help: HelpTextLocalizationCacheMisses,
		},
	)
)
