// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Alert is the ephemeral fan-out trigger derived 1:1 from an attack
// classification. Alerts are never persisted; the attack log holds the
// durable record.
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Length    int       `json:"length"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates an Alert for one attack classification.
func New(label string, length int, timestamp time.Time) *Alert {
	return &Alert{
		ID:        uuid.New(),
		Label:     label,
		Length:    length,
		Timestamp: timestamp,
	}
}

// CTime formats the alert timestamp in the ctime style used by the
// console channel and the attack log.
func (a *Alert) CTime() string {
	return a.Timestamp.Format(time.ANSIC)
}

// Notifier is one alert delivery channel. Implementations are best-effort:
// a Send error means this channel missed this alert, nothing more.
type Notifier interface {
	// Name identifies the channel in logs and metrics.
	Name() string

	// Enabled reports whether the channel should be attempted at all.
	Enabled() bool

	// Send delivers one alert, honoring the context deadline.
	Send(ctx context.Context, alert *Alert) error
}
