// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package features derives the fixed-shape feature record the classifier
// was trained on from one raw network event.
//
// The numeric feature order is a contract shared with the fitted scaler:
// time, protocol code, length. FeatureOrder is checked against the scaler's
// arity at artifact load time so an order or shape drift fails at startup
// instead of silently corrupting classifications.
package features

import (
	"time"

	"github.com/tomtom215/netsentinel/internal/capture"
)

// FeatureOrder is the exact numeric feature order fed to the scaler,
// matching training time. Do not reorder.
var FeatureOrder = []string{"time", "protocol", "length"}

// FallbackProtocol is the category substituted when an event carries no
// usable protocol identifier. It is intentionally absent from any fitted
// protocol mapping, so it encodes to the unknown-category code 0.
const FallbackProtocol = "0"

// FeatureRecord is the deterministic numeric/categorical summary of one
// RawEvent, prior to encoding and scaling.
type FeatureRecord struct {
	// Time is the observation timestamp as Unix seconds with fractional
	// precision, the representation used at training time.
	Time float64

	// Protocol is the raw protocol category, not yet integer-encoded.
	Protocol string

	// Length is the event byte length, never negative.
	Length int
}

// Extract converts one RawEvent into a FeatureRecord. It never fails:
// a missing protocol falls back to FallbackProtocol, a negative length
// clamps to zero, and a zero timestamp defaults to the current time.
func Extract(ev capture.RawEvent) FeatureRecord {
	rec := FeatureRecord{
		Protocol: ev.Protocol,
		Length:   ev.Length,
	}

	if rec.Protocol == "" {
		rec.Protocol = FallbackProtocol
	}
	if rec.Length < 0 {
		rec.Length = 0
	}

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	rec.Time = float64(ts.UnixNano()) / float64(time.Second)

	return rec
}

// Vector lays out the record's numeric fields in FeatureOrder, with the
// protocol category already encoded to its integer code.
func (r FeatureRecord) Vector(protocolCode int) []float64 {
	return []float64{r.Time, float64(protocolCode), float64(r.Length)}
}
