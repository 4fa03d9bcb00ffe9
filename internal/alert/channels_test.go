// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

// fakePath puts fake executables with the given names on PATH so
// exec.LookPath resolves them, without ever running real players.
func fakePath(t *testing.T, names ...string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake PATH executables are POSIX-only")
	}
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("writing fake executable %s: %v", name, err)
		}
	}
	t.Setenv("PATH", dir)
}

// launchRecorder captures detached command launches.
type launchRecorder struct {
	mu      sync.Mutex
	cmds    [][]string
	failFor map[string]error
}

func (r *launchRecorder) launch(name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, append([]string{name}, args...))
	if r.failFor != nil {
		if err, ok := r.failFor[name]; ok {
			return err
		}
	}
	return nil
}

func (r *launchRecorder) launched() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cmds
}

func TestSoundNotifierUsesFirstAvailablePlayer(t *testing.T) {
	fakePath(t, "aplay", "mpg123")
	rec := &launchRecorder{}

	n := NewSoundNotifier("resources/alert.wav", true)
	n.launch = rec.launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	cmds := rec.launched()
	if len(cmds) != 1 {
		t.Fatalf("expected one launch, got %v", cmds)
	}
	// paplay is absent, so aplay is the first hit in the fallback order.
	if cmds[0][0] != "aplay" || cmds[0][1] != "resources/alert.wav" {
		t.Errorf("unexpected launch: %v", cmds[0])
	}
}

func TestSoundNotifierFallsThroughFailedLaunch(t *testing.T) {
	fakePath(t, "paplay", "mpg123")
	rec := &launchRecorder{failFor: map[string]error{"paplay": errors.New("daemon not running")}}

	n := NewSoundNotifier("alert.wav", true)
	n.launch = rec.launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	cmds := rec.launched()
	if len(cmds) != 2 || cmds[1][0] != "mpg123" {
		t.Errorf("expected fallback to mpg123 after paplay failure, got %v", cmds)
	}
}

func TestSoundNotifierAllPlayersMissing(t *testing.T) {
	fakePath(t) // empty PATH
	n := NewSoundNotifier("alert.wav", true)
	n.launch = (&launchRecorder{}).launch

	if err := n.Send(context.Background(), testAlert(t)); err == nil {
		t.Error("expected error when no player is available")
	}
}

func TestSoundNotifierEnabled(t *testing.T) {
	if NewSoundNotifier("", true).Enabled() {
		t.Error("sound channel without an asset path must be disabled")
	}
	if NewSoundNotifier("alert.wav", false).Enabled() {
		t.Error("sound channel toggled off must be disabled")
	}
	if !NewSoundNotifier("alert.wav", true).Enabled() {
		t.Error("configured sound channel must be enabled")
	}
}

func TestVoiceNotifierSpeaksLabel(t *testing.T) {
	fakePath(t, "espeak")
	rec := &launchRecorder{}

	n := NewVoiceNotifier(true)
	n.launch = rec.launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	cmds := rec.launched()
	if len(cmds) != 1 {
		t.Fatalf("expected one launch, got %v", cmds)
	}
	if cmds[0][0] != "espeak" || cmds[0][1] != "Warning. icmp_flood attack detected." {
		t.Errorf("unexpected phrase launch: %v", cmds[0])
	}
}

func TestVoiceNotifierNoEngineIsNoOp(t *testing.T) {
	fakePath(t) // empty PATH
	n := NewVoiceNotifier(true)
	n.launch = (&launchRecorder{}).launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Errorf("expected missing speech subsystem to be a no-op, got %v", err)
	}
}

func TestDesktopNotifierSend(t *testing.T) {
	fakePath(t, "notify-send")
	rec := &launchRecorder{}

	n := NewDesktopNotifier(true)
	n.launch = rec.launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	cmds := rec.launched()
	if len(cmds) != 1 {
		t.Fatalf("expected one launch, got %v", cmds)
	}
	want := []string{"notify-send", "Intrusion Detected", "icmp_flood detected"}
	for i, arg := range want {
		if cmds[0][i] != arg {
			t.Errorf("launch arg %d = %q, want %q", i, cmds[0][i], arg)
		}
	}
}

func TestDesktopNotifierMissingToolIsNoOp(t *testing.T) {
	fakePath(t) // empty PATH
	n := NewDesktopNotifier(true)
	n.launch = (&launchRecorder{}).launch

	if err := n.Send(context.Background(), testAlert(t)); err != nil {
		t.Errorf("expected missing notify-send to be a no-op, got %v", err)
	}
}

func TestChannelsHonorContext(t *testing.T) {
	fakePath(t, "paplay", "espeak", "notify-send")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	channels := []Notifier{
		NewSoundNotifier("alert.wav", true),
		NewVoiceNotifier(true),
		NewDesktopNotifier(true),
	}
	for _, ch := range channels {
		if err := ch.Send(ctx, testAlert(t)); !errors.Is(err, context.Canceled) {
			t.Errorf("channel %s: expected context.Canceled, got %v", ch.Name(), err)
		}
	}
}

// Bounded-dispatch sanity: a channel that blocks past its timeout must not
// hold up Drain longer than the timeout window.
func TestDispatchTimeoutBoundsSlowChannel(t *testing.T) {
	slow := &blockingNotifier{name: "sound", release: make(chan struct{})}
	defer close(slow.release)

	d := NewDispatcher(nil, []Notifier{slow}, 50*time.Millisecond)

	start := time.Now()
	d.Dispatch(testAlert(t))
	d.Drain()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("expected bounded dispatch, took %v", elapsed)
	}
}

// blockingNotifier blocks in Send until the context expires.
type blockingNotifier struct {
	name    string
	release chan struct{}
}

func (b *blockingNotifier) Name() string  { return b.name }
func (b *blockingNotifier) Enabled() bool { return true }

func (b *blockingNotifier) Send(ctx context.Context, _ *Alert) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.release:
		return nil
	}
}
