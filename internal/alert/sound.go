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

// soundPlayers is the ordered fallback list of local audio players. The
// first player present on PATH that launches successfully wins; if none
// launch, the audible alert is silently skipped.
var soundPlayers = [][]string{
	{"paplay"},
	{"aplay"},
	{"mpg123"},
	{"ffplay", "-nodisp", "-autoexit"},
}

// SoundNotifier plays a fixed local audio asset on detection. Only the
// launch is synchronous; playback itself runs detached so a slow audio
// device cannot stall the dispatcher. The dispatch context bounds the
// launch, not the playback.
type SoundNotifier struct {
	path    string
	enabled bool

	// launch starts a detached command; overridable in tests.
	launch func(name string, args ...string) error
}

// NewSoundNotifier creates a sound notifier for the given audio asset.
func NewSoundNotifier(path string, enabled bool) *SoundNotifier {
	return &SoundNotifier{
		path:    path,
		enabled: enabled,
		launch:  launchDetached,
	}
}

// Name returns the channel name.
func (n *SoundNotifier) Name() string { return "sound" }

// Enabled reports whether the channel is configured on.
func (n *SoundNotifier) Enabled() bool { return n.enabled && n.path != "" }

// Send walks the player fallback chain until one launches. All players
// failing is reported as an error so the dispatcher can count it, but it
// carries no further consequence.
func (n *SoundNotifier) Send(ctx context.Context, _ *Alert) error {
	for _, player := range soundPlayers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := exec.LookPath(player[0]); err != nil {
			continue
		}
		args := append(append([]string{}, player[1:]...), n.path)
		if err := n.launch(player[0], args...); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no audio player could play %s", n.path)
}

// launchDetached starts a command without waiting for completion. The
// spawned process is reaped in the background so it never zombies.
func launchDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
