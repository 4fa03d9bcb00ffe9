// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package capture

import (
	"context"
	"time"
)

// RawEvent is one observed network occurrence delivered by a Source.
// It is immutable and lives for exactly one pipeline pass.
type RawEvent struct {
	// Protocol is the observed protocol identifier ("TCP", "ICMP", or a
	// numeric string when the protocol is not recognized).
	Protocol string `json:"protocol"`

	// Length is the total observed byte length of the event.
	Length int `json:"length"`

	// Timestamp is the observation time. The zero value means "unknown";
	// downstream extraction substitutes the current time.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Handler is invoked once per observed event. Sources call it sequentially;
// the next event is not delivered until the handler returns.
type Handler func(RawEvent)

// Source yields a sequence of raw events to a handler until the context is
// canceled or the source fails. Run blocks for the lifetime of the source.
//
// A permission or interface failure is fatal to the source and is returned;
// it is the caller's job to report it and stop cleanly.
type Source interface {
	Run(ctx context.Context, handler Handler) error

	// String names the source for logs ("afpacket(eth0)", "replay(...)").
	String() string
}
