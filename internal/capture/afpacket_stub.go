// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

//go:build !linux

package capture

import (
	"context"
	"errors"
)

// ErrUnsupportedPlatform is returned when live capture is requested on a
// platform without AF_PACKET support. Use the replay source instead.
var ErrUnsupportedPlatform = errors.New("live capture is only supported on Linux")

// AFPacketSource is a placeholder on non-Linux platforms.
type AFPacketSource struct{}

// NewAFPacketSource reports that live capture is unavailable here.
func NewAFPacketSource(_ string, _ int) (*AFPacketSource, error) {
	return nil, ErrUnsupportedPlatform
}

// Run never runs on this platform.
func (s *AFPacketSource) Run(_ context.Context, _ Handler) error {
	return ErrUnsupportedPlatform
}

// String implements fmt.Stringer for logging.
func (s *AFPacketSource) String() string {
	return "afpacket(unsupported)"
}
