// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeNotifier records sends and optionally fails them.
type fakeNotifier struct {
	name    string
	enabled bool
	err     error

	mu    sync.Mutex
	calls int
	last  *Alert
}

func (f *fakeNotifier) Name() string  { return f.name }
func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) Send(_ context.Context, a *Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = a
	return f.err
}

func (f *fakeNotifier) sends() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testAlert returns a representative attack alert.
func testAlert(t *testing.T) *Alert {
	t.Helper()
	return New("icmp_flood", 60000, time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC))
}

func TestDispatchFansOutToAllEnabledChannels(t *testing.T) {
	sound := &fakeNotifier{name: "sound", enabled: true}
	voice := &fakeNotifier{name: "voice", enabled: true}
	desktop := &fakeNotifier{name: "desktop", enabled: true}

	d := NewDispatcher(nil, []Notifier{sound, voice, desktop}, time.Second)
	d.Dispatch(testAlert(t))
	d.Drain()

	for _, ch := range []*fakeNotifier{sound, voice, desktop} {
		if ch.sends() != 1 {
			t.Errorf("expected channel %s to be attempted once, got %d", ch.name, ch.sends())
		}
	}
}

func TestDispatchSkipsDisabledChannels(t *testing.T) {
	on := &fakeNotifier{name: "sound", enabled: true}
	off := &fakeNotifier{name: "voice", enabled: false}

	d := NewDispatcher(nil, []Notifier{on, off}, time.Second)
	d.Dispatch(testAlert(t))
	d.Drain()

	if on.sends() != 1 {
		t.Errorf("expected enabled channel to be attempted, got %d", on.sends())
	}
	if off.sends() != 0 {
		t.Errorf("expected disabled channel to be skipped, got %d", off.sends())
	}
}

func TestDispatchIsolatesChannelFailure(t *testing.T) {
	broken := &fakeNotifier{name: "sound", enabled: true, err: errors.New("player exploded")}
	healthy := &fakeNotifier{name: "desktop", enabled: true}

	d := NewDispatcher(nil, []Notifier{broken, healthy}, time.Second)
	d.Dispatch(testAlert(t))
	d.Drain()

	if healthy.sends() != 1 {
		t.Errorf("expected healthy channel to run despite sibling failure, got %d", healthy.sends())
	}
}

func TestDispatchBreakerOpensOnRepeatedFailure(t *testing.T) {
	broken := &fakeNotifier{name: "voice", enabled: true, err: errors.New("no speech bus")}

	d := NewDispatcher(nil, []Notifier{broken}, time.Second)

	// Trip the breaker, then keep dispatching.
	for i := 0; i < breakerThreshold+3; i++ {
		d.Dispatch(testAlert(t))
		d.Drain()
	}

	if got := broken.sends(); got != breakerThreshold {
		t.Errorf("expected breaker to stop attempts at %d consecutive failures, channel saw %d", breakerThreshold, got)
	}
}

func TestDispatchConsoleInline(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsoleNotifierWriter(&buf)

	d := NewDispatcher(console, nil, time.Second)
	d.Dispatch(testAlert(t))

	// No Drain: the console line must already be written when Dispatch
	// returns.
	out := buf.String()
	if !strings.Contains(out, "ALERT: ICMP_FLOOD DETECTED (len=60000)") {
		t.Errorf("expected highlighted console line, got %q", out)
	}
	if !strings.Contains(out, "Fri Aug 28 10:15:00 2026") {
		t.Errorf("expected ctime timestamp in console line, got %q", out)
	}
}

func TestAlertCTime(t *testing.T) {
	a := New("syn_flood", 40, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if got := a.CTime(); got != "Fri Jan  2 03:04:05 2026" {
		t.Errorf("CTime() = %q", got)
	}
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	a := New("port_scan", 1, time.Now())
	b := New("port_scan", 1, time.Now())
	if a.ID == b.ID {
		t.Error("expected distinct alert IDs")
	}
}
