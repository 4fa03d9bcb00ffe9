// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"errors"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/netsentinel/internal/logging"
	"github.com/tomtom215/netsentinel/internal/metrics"
)

// breakerThreshold is the consecutive-failure count that opens a channel's
// circuit breaker.
const breakerThreshold = 5

// breakerCooldown is how long an open breaker waits before probing the
// channel again.
const breakerCooldown = 30 * time.Second

// Dispatcher fans one alert out to every enabled channel in priority
// order: console, then sound, voice, and desktop.
//
// The console channel is emitted inline. The remaining channels are
// launched fire-and-forget with a bounded per-channel timeout, each behind
// its own circuit breaker so a channel that keeps failing (a broken audio
// stack, a dead session bus) stops being attempted for a while without
// affecting the others. Dispatch never returns an error and never blocks
// ingestion beyond the console write and goroutine launches.
type Dispatcher struct {
	console  Notifier
	channels []Notifier
	breakers map[string]*gobreaker.CircuitBreaker[struct{}]
	timeout  time.Duration

	wg sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given background channels.
// The channel order is the attempt priority. A nil console disables the
// inline console line (used by tests).
func NewDispatcher(console Notifier, channels []Notifier, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	d := &Dispatcher{
		console:  console,
		channels: channels,
		breakers: make(map[string]*gobreaker.CircuitBreaker[struct{}], len(channels)),
		timeout:  timeout,
	}
	for _, ch := range channels {
		d.breakers[ch.Name()] = newChannelBreaker(ch.Name())
	}
	return d
}

// newChannelBreaker creates the circuit breaker guarding one channel.
func newChannelBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    name,
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("channel", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("alert channel breaker state changed")
		},
	})
}

// Dispatch fans out one alert. It must only be called for attack
// classifications; the pipeline enforces the benign/unknown filter.
func (d *Dispatcher) Dispatch(alert *Alert) {
	metrics.AlertsDispatched.Inc()

	if d.console != nil && d.console.Enabled() {
		err := d.console.Send(context.Background(), alert)
		metrics.ObserveChannelSend(d.console.Name(), err)
		if err != nil {
			logging.Error().Err(err).Msg("console alert failed")
		}
	}

	for _, ch := range d.channels {
		if !ch.Enabled() {
			continue
		}
		d.wg.Add(1)
		go d.send(ch, alert)
	}
}

// send runs one background channel attempt inside its failure boundary.
func (d *Dispatcher) send(ch Notifier, alert *Alert) {
	defer d.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_, err := d.breakers[ch.Name()].Execute(func() (struct{}, error) {
		return struct{}{}, ch.Send(ctx, alert)
	})

	switch {
	case err == nil:
		metrics.ObserveChannelSend(ch.Name(), nil)
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.ObserveChannelOpen(ch.Name())
	default:
		metrics.ObserveChannelSend(ch.Name(), err)
		logging.Debug().Err(err).Str("channel", ch.Name()).Msg("alert channel failed")
	}
}

// Drain waits for in-flight channel attempts to finish. Called on
// shutdown and by tests; ingestion never calls it.
func (d *Dispatcher) Drain() {
	d.wg.Wait()
}
