// Package metrics defines the Prometheus collectors exposed by the monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sample ingestion metrics.
	SamplesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivesafe_samples_total",
			Help: "Total number of speed samples evaluated",
		},
		[]string{"source"},
	)

	SourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivesafe_source_errors_total",
			Help: "Total number of sample source failures",
		},
		[]string{"source"},
	)

	// Alert metrics.
	OverspeedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drivesafe_overspeed_total",
			Help: "Total number of excursions above the speed limit",
		},
	)

	CuesFiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drivesafe_cues_fired_total",
			Help: "Total number of audible cues fired",
		},
	)

	// Session gauges.
	SpeedKmh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drivesafe_speed_kmh",
			Help: "Display speed of the most recent sample in km/h",
		},
	)

	SpeedLimitKmh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drivesafe_speed_limit_kmh",
			Help: "Currently configured speed limit in km/h",
		},
	)
)
