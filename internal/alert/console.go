// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package alert

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleNotifier prints a highlighted alert line to the terminal. It is
// the highest-priority channel and the only one dispatched inline: the
// operator watching the console must see the alert even if every other
// channel is broken.
type ConsoleNotifier struct {
	out       io.Writer
	highlight *color.Color
}

// NewConsoleNotifier creates a console notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{
		out:       os.Stdout,
		highlight: color.New(color.FgRed, color.Bold),
	}
}

// NewConsoleNotifierWriter creates a console notifier with a custom
// writer, for tests.
func NewConsoleNotifierWriter(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{
		out:       w,
		highlight: color.New(color.FgRed, color.Bold),
	}
}

// Name returns the channel name.
func (n *ConsoleNotifier) Name() string { return "console" }

// Enabled always returns true; the console channel cannot be turned off.
func (n *ConsoleNotifier) Enabled() bool { return true }

// Send prints the alert line.
func (n *ConsoleNotifier) Send(_ context.Context, alert *Alert) error {
	line := fmt.Sprintf("\n🚨 ALERT: %s DETECTED (len=%d) at %s\n",
		strings.ToUpper(alert.Label), alert.Length, alert.CTime())
	if _, err := n.highlight.Fprint(n.out, line); err != nil {
		return fmt.Errorf("writing console alert: %w", err)
	}
	return nil
}
