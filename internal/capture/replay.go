// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/netsentinel/internal/metrics"
)

// ReplaySource replays recorded events from a newline-delimited JSON file.
// Each line is one RawEvent:
//
//	{"protocol":"TCP","length":1500}
//	{"protocol":"ICMP","length":60000,"timestamp":"2026-08-28T10:15:00Z"}
//
// Lines that do not parse are skipped; an event without a timestamp is
// stamped with the current time. Replay lets the full pipeline run without
// capture privileges and is the source used by tests.
type ReplaySource struct {
	path string
}

// ErrReplayComplete is returned by Run once every recorded event has been
// delivered. Callers must treat it as completion, not failure: rerunning a
// finished replay would re-deliver every recorded attack.
var ErrReplayComplete = errors.New("replay source complete")

// NewReplaySource creates a replay source for the given event file.
func NewReplaySource(path string) (*ReplaySource, error) {
	if path == "" {
		return nil, fmt.Errorf("replay source requires an event file path")
	}
	return &ReplaySource{path: path}, nil
}

// Run streams the recorded events to the handler in file order, then
// returns ErrReplayComplete. A missing or unreadable file is a source
// failure.
func (s *ReplaySource) Run(ctx context.Context, handler Handler) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening replay file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev RawEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			// Malformed lines are skipped, mirroring live capture where a
			// frame that cannot be parsed still must not stop ingestion.
			metrics.CaptureErrors.Inc()
			continue
		}
		if ev.Timestamp.IsZero() {
			ev.Timestamp = time.Now()
		}
		handler(ev)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading replay file: %w", err)
	}
	return ErrReplayComplete
}

// String implements fmt.Stringer for logging.
func (s *ReplaySource) String() string {
	return "replay(" + s.path + ")"
}
