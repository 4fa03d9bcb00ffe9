// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package attacklog persists one durable, append-only record per detected
// attack.
//
// The log file is the source of truth across restarts; an in-process
// mirror serves the current session (status endpoint, recent alerts). The
// file format is one UTF-8 line per detection,
//
//	Fri Aug 28 10:15:00 2026 - icmp_flood - length:60000
//
// split on " - " by the external dashboard, so the format is part of the
// public contract. Entries are never deduplicated: the system counts
// occurrences, not distinct alerts.
package attacklog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fieldSeparator joins the three fields of one log line.
const fieldSeparator = " - "

// Entry is one detected attack in the current session's mirror.
type Entry struct {
	Time   time.Time `json:"time"`
	Label  string    `json:"attack"`
	Length int       `json:"length"`
}

// Line renders the entry in the durable file format, without the trailing
// newline.
func (e Entry) Line() string {
	return e.Time.Format(time.ANSIC) + fieldSeparator + e.Label + fieldSeparator + "length:" + strconv.Itoa(e.Length)
}

// ParseLine parses one durable log line back into an Entry. It mirrors
// the dashboard's parser and exists to keep the format contract tested.
func ParseLine(line string) (Entry, error) {
	parts := strings.SplitN(line, fieldSeparator, 3)
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("malformed log line %q", line)
	}
	ts, err := time.Parse(time.ANSIC, parts[0])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed timestamp in log line: %w", err)
	}
	lengthStr, ok := strings.CutPrefix(parts[2], "length:")
	if !ok {
		return Entry{}, fmt.Errorf("malformed length field %q", parts[2])
	}
	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return Entry{}, fmt.Errorf("malformed length in log line: %w", err)
	}
	return Entry{Time: ts, Label: parts[1], Length: length}, nil
}

// Logger appends attack records to the durable log file and keeps the
// session mirror. The file is opened per append, never held across
// events, so it stays safe to tail or rotate externally.
type Logger struct {
	path       string
	maxEntries int

	mu      sync.RWMutex
	entries []Entry
}

// New creates a Logger writing to path. maxEntries caps the in-memory
// mirror (0 means unbounded); the file is never truncated.
func New(path string, maxEntries int) *Logger {
	return &Logger{path: path, maxEntries: maxEntries}
}

// Record appends one entry to the durable file and the session mirror.
// The durable append happens first and its failure is returned: it is the
// one failure class the operator must see, because it silently breaks
// durability. The mirror is updated even when the file append fails so
// the session view stays complete.
func (l *Logger) Record(entry Entry) error {
	appendErr := l.appendFile(entry)

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
		overflow := len(l.entries) - l.maxEntries
		l.entries = append(l.entries[:0:0], l.entries[overflow:]...)
	}
	l.mu.Unlock()

	return appendErr
}

// appendFile writes one line in append mode, creating parent directories
// as needed.
func (l *Logger) appendFile(entry Entry) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening attack log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry.Line() + "\n"); err != nil {
		return fmt.Errorf("appending to attack log: %w", err)
	}
	return nil
}

// Entries returns a copy of the session mirror in append order.
func (l *Logger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Recent returns up to n newest entries, newest last.
func (l *Logger) Recent(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of entries recorded this session.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Path returns the durable log file path.
func (l *Logger) Path() string {
	return l.path
}
