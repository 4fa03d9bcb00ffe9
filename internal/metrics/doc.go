// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package metrics declares the Prometheus collectors for the detection
// pipeline. Collectors are registered via promauto at package init and
// exposed on the operational HTTP endpoint at /metrics.
package metrics
