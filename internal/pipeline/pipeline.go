// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package pipeline runs one network event through the full detection
// chain: feature extraction, protocol encoding, scaling, forest
// prediction, label decoding, and the attack response.
//
// The chain never drops an event and never stops ingestion: any stage
// failure resolves the event to the "unknown" label, which is treated as
// non-attack. For attack labels the durable log append strictly precedes
// alert fan-out, so a crash mid-response can lose a notification but
// never the record.
package pipeline

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/netsentinel/internal/alert"
	"github.com/tomtom215/netsentinel/internal/attacklog"
	"github.com/tomtom215/netsentinel/internal/capture"
	"github.com/tomtom215/netsentinel/internal/features"
	"github.com/tomtom215/netsentinel/internal/logging"
	"github.com/tomtom215/netsentinel/internal/metrics"
	"github.com/tomtom215/netsentinel/internal/model"
)

// AlertSink receives alerts for attack classifications.
type AlertSink interface {
	Dispatch(alert *alert.Alert)
}

// Classification is the resolved outcome of one event.
type Classification struct {
	Label  string
	Attack bool
	Record features.FeatureRecord
}

// Stats is a point-in-time snapshot of pipeline counters, served by the
// status endpoint.
type Stats struct {
	EventsProcessed uint64 `json:"events_processed"`
	Attacks         uint64 `json:"attacks"`
	Benign          uint64 `json:"benign"`
	Unknown         uint64 `json:"unknown"`
	ModelReady      bool   `json:"model_ready"`
}

// Controller owns the per-event detection chain. HandleEvent is called
// from a single capture goroutine; the counters are atomic only so Stats
// can be read concurrently from the HTTP server.
type Controller struct {
	artifacts *model.Artifacts
	log       *attacklog.Logger
	alerts    AlertSink

	benignLabel    string
	heartbeatEvery int

	processed atomic.Uint64
	attacks   atomic.Uint64
	benign    atomic.Uint64
	unknown   atomic.Uint64
	quiet     atomic.Uint64
}

// NewController wires the detection chain. alerts may be nil to disable
// fan-out entirely.
func NewController(artifacts *model.Artifacts, log *attacklog.Logger, alerts AlertSink, benignLabel string, heartbeatEvery int) *Controller {
	if benignLabel == "" {
		benignLabel = "normal"
	}
	return &Controller{
		artifacts:      artifacts,
		log:            log,
		alerts:         alerts,
		benignLabel:    benignLabel,
		heartbeatEvery: heartbeatEvery,
	}
}

// HandleEvent runs one raw event through the chain. It satisfies
// capture.Handler and never fails.
func (c *Controller) HandleEvent(ev capture.RawEvent) {
	c.processed.Add(1)
	metrics.EventsProcessed.Inc()

	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	cls := c.Classify(ev)
	metrics.ClassificationsTotal.WithLabelValues(cls.Label).Inc()

	if !cls.Attack {
		c.observeBenign(cls)
		return
	}

	c.attacks.Add(1)
	c.respond(cls, ev.Timestamp)
}

// Classify resolves one event to its label. Every stage failure resolves
// to the unknown sentinel rather than an error so ingestion keeps moving.
func (c *Controller) Classify(ev capture.RawEvent) Classification {
	start := time.Now()
	defer func() {
		metrics.ClassifyDuration.Observe(time.Since(start).Seconds())
	}()

	rec := features.Extract(ev)
	cls := Classification{Label: model.UnknownLabel, Record: rec}

	if !c.artifacts.Ready() {
		c.unknown.Add(1)
		return cls
	}

	vec := rec.Vector(c.artifacts.Protocols.Encode(rec.Protocol))

	scaled, err := c.artifacts.Scaler.Transform(vec)
	if err != nil {
		logging.Warn().Err(err).Msg("scaling failed, classifying as unknown")
		c.unknown.Add(1)
		return cls
	}

	class, err := c.artifacts.Model.Predict(scaled)
	if err != nil {
		logging.Warn().Err(err).Msg("prediction failed, classifying as unknown")
		c.unknown.Add(1)
		return cls
	}

	cls.Label = c.artifacts.Labels.Label(class)
	if cls.Label == model.UnknownLabel {
		c.unknown.Add(1)
		return cls
	}

	cls.Attack = !model.IsBenign(cls.Label, c.benignLabel)
	return cls
}

// observeBenign counts non-attack traffic and emits the periodic
// heartbeat so a quiet console still shows the system is alive.
// Classify already counted unknowns, which are non-attack but not
// benign.
func (c *Controller) observeBenign(cls Classification) {
	if cls.Label != model.UnknownLabel {
		c.benign.Add(1)
	}
	n := c.quiet.Add(1)
	if c.heartbeatEvery > 0 && n%uint64(c.heartbeatEvery) == 0 {
		logging.Info().
			Uint64("events", c.processed.Load()).
			Str("label", cls.Label).
			Msg("normal traffic observed")
	}
}

// respond is the attack path: durable log append first, alert fan-out
// second. A failed append is reported loudly but does not suppress the
// alert; the operator must hear about the attack either way.
func (c *Controller) respond(cls Classification, ts time.Time) {
	entry := attacklog.Entry{Time: ts, Label: cls.Label, Length: cls.Record.Length}
	if err := c.log.Record(entry); err != nil {
		metrics.LogAppendErrors.Inc()
		logging.Error().Err(err).
			Str("attack", cls.Label).
			Msg("attack log append failed, durable record lost")
	} else {
		metrics.LogAppends.Inc()
	}

	logging.Warn().
		Str("attack", cls.Label).
		Int("length", cls.Record.Length).
		Msg("attack detected")

	if c.alerts != nil {
		c.alerts.Dispatch(alert.New(cls.Label, cls.Record.Length, ts))
	}
}

// Stats snapshots the pipeline counters.
func (c *Controller) Stats() Stats {
	return Stats{
		EventsProcessed: c.processed.Load(),
		Attacks:         c.attacks.Load(),
		Benign:          c.benign.Load(),
		Unknown:         c.unknown.Load(),
		ModelReady:      c.artifacts.Ready(),
	}
}
