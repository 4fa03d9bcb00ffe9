// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package capture delivers raw network events to the detection pipeline.
//
// The pipeline itself is source-agnostic: anything implementing Source can
// feed it. Two sources are provided:
//
//   - AFPacketSource: live capture via a Linux AF_PACKET raw socket
//     (requires root or CAP_NET_RAW; unavailable on other platforms)
//   - ReplaySource: recorded events from a newline-delimited JSON file,
//     used for development, demos, and tests
//
// Sources invoke the handler once per event and never deliver the next
// event before the handler returns, so downstream processing is strictly
// one event at a time.
package capture
