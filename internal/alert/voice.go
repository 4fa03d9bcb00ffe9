// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"fmt"
	"os/exec"
)

// speechEngines is the ordered fallback list of text-to-speech commands.
var speechEngines = []string{"espeak", "spd-say", "say"}

// VoiceNotifier speaks a short phrase naming the detected label. If no
// speech engine is installed the channel is a no-op.
type VoiceNotifier struct {
	enabled bool

	// launch starts a detached command; overridable in tests.
	launch func(name string, args ...string) error
}

// NewVoiceNotifier creates a voice notifier.
func NewVoiceNotifier(enabled bool) *VoiceNotifier {
	return &VoiceNotifier{
		enabled: enabled,
		launch:  launchDetached,
	}
}

// Name returns the channel name.
func (n *VoiceNotifier) Name() string { return "voice" }

// Enabled reports whether the channel is configured on.
func (n *VoiceNotifier) Enabled() bool { return n.enabled }

// Send synthesizes the warning phrase with the first available engine.
// An absent speech subsystem is a quiet no-op, not an error.
func (n *VoiceNotifier) Send(ctx context.Context, alert *Alert) error {
	phrase := fmt.Sprintf("Warning. %s attack detected.", alert.Label)
	for _, engine := range speechEngines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := exec.LookPath(engine); err != nil {
			continue
		}
		if err := n.launch(engine, phrase); err == nil {
			return nil
		}
	}
	return nil
}
