// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveChannelSend(t *testing.T) {
	before := testutil.ToFloat64(AlertChannelSends.WithLabelValues("sound", "ok"))
	ObserveChannelSend("sound", nil)
	after := testutil.ToFloat64(AlertChannelSends.WithLabelValues("sound", "ok"))
	if after != before+1 {
		t.Errorf("expected ok counter to increment, got %v -> %v", before, after)
	}

	before = testutil.ToFloat64(AlertChannelSends.WithLabelValues("sound", "error"))
	ObserveChannelSend("sound", errors.New("player missing"))
	after = testutil.ToFloat64(AlertChannelSends.WithLabelValues("sound", "error"))
	if after != before+1 {
		t.Errorf("expected error counter to increment, got %v -> %v", before, after)
	}
}

func TestObserveChannelOpen(t *testing.T) {
	before := testutil.ToFloat64(AlertChannelSends.WithLabelValues("voice", "open"))
	ObserveChannelOpen("voice")
	after := testutil.ToFloat64(AlertChannelSends.WithLabelValues("voice", "open"))
	if after != before+1 {
		t.Errorf("expected open counter to increment, got %v -> %v", before, after)
	}
}

func TestPipelineCounters(t *testing.T) {
	before := testutil.ToFloat64(EventsProcessed)
	EventsProcessed.Inc()
	if got := testutil.ToFloat64(EventsProcessed); got != before+1 {
		t.Errorf("expected events counter to increment, got %v -> %v", before, got)
	}

	before = testutil.ToFloat64(ClassificationsTotal.WithLabelValues("icmp_flood"))
	ClassificationsTotal.WithLabelValues("icmp_flood").Inc()
	if got := testutil.ToFloat64(ClassificationsTotal.WithLabelValues("icmp_flood")); got != before+1 {
		t.Errorf("expected classification counter to increment, got %v -> %v", before, got)
	}
}
