// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the detection pipeline:
// - per-event throughput and classification outcomes
// - alert channel successes and failures
// - durable log append failures (the loud failure class)

var (
	// Pipeline Metrics
	EventsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentinel_events_processed_total",
			Help: "Total number of raw events processed by the pipeline",
		},
	)

	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsentinel_classifications_total",
			Help: "Total number of classifications by resulting label",
		},
		[]string{"label"},
	)

	ClassifyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netsentinel_classify_duration_seconds",
			Help:    "Duration of the extract-encode-classify chain per event",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	// Alert Channel Metrics
	AlertsDispatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentinel_alerts_dispatched_total",
			Help: "Total number of attack classifications fanned out to alert channels",
		},
	)

	AlertChannelSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsentinel_alert_channel_sends_total",
			Help: "Total number of alert channel send attempts by channel and outcome",
		},
		[]string{"channel", "outcome"}, // outcome: "ok", "error", "open" (breaker)
	)

	// Attack Log Metrics
	LogAppends = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentinel_log_appends_total",
			Help: "Total number of attack log entries appended",
		},
	)

	LogAppendErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentinel_log_append_errors_total",
			Help: "Total number of attack log append failures",
		},
	)

	// Capture Metrics
	CaptureErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentinel_capture_errors_total",
			Help: "Total number of raw event read errors from the capture source",
		},
	)
)

// ObserveChannelSend records one alert channel attempt.
func ObserveChannelSend(channel string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	AlertChannelSends.WithLabelValues(channel, outcome).Inc()
}

// ObserveChannelOpen records an attempt short-circuited by an open breaker.
func ObserveChannelOpen(channel string) {
	AlertChannelSends.WithLabelValues(channel, "open").Inc()
}
