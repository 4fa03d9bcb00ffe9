// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// desktopTitle is the notification title shown for every detection.
const desktopTitle = "Intrusion Detected"

// DesktopNotifier raises a desktop notification via notify-send. The
// channel is Linux-only; other platforms no-op.
type DesktopNotifier struct {
	enabled bool

	// launch starts a detached command; overridable in tests.
	launch func(name string, args ...string) error
}

// NewDesktopNotifier creates a desktop notifier.
func NewDesktopNotifier(enabled bool) *DesktopNotifier {
	return &DesktopNotifier{
		enabled: enabled,
		launch:  launchDetached,
	}
}

// Name returns the channel name.
func (n *DesktopNotifier) Name() string { return "desktop" }

// Enabled reports whether the channel can run here at all.
func (n *DesktopNotifier) Enabled() bool {
	return n.enabled && runtime.GOOS == "linux"
}

// Send raises the notification. A missing notify-send is a quiet no-op.
func (n *DesktopNotifier) Send(ctx context.Context, alert *Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := exec.LookPath("notify-send"); err != nil {
		return nil
	}
	body := fmt.Sprintf("%s detected", alert.Label)
	return n.launch("notify-send", desktopTitle, body)
}
