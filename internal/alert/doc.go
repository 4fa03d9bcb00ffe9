// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package alert fans detected attacks out to the operator over four
// best-effort channels:
//
//	Classification -> Dispatcher -> console (inline)
//	                             -> sound   (detached, breaker-guarded)
//	                             -> voice   (detached, breaker-guarded)
//	                             -> desktop (detached, breaker-guarded)
//
// Channel failures are isolated: one channel failing, hanging, or missing
// its system dependency never prevents the others from being attempted and
// never surfaces an error to the ingestion path. Durable logging happens
// before dispatch and lives in the attacklog package, so a crash mid-
// dispatch cannot lose the record.
package alert
