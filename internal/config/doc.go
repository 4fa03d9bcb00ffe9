// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package config loads and validates NetSentinel configuration using
// Koanf v2 with layered sources.
//
// Precedence, highest first:
//
//  1. Environment variables (CAPTURE_INTERFACE, ATTACKLOG_PATH, LOG_LEVEL, ...)
//  2. Optional YAML config file (config.yaml, or NETSENTINEL_CONFIG path)
//  3. Built-in defaults
//
// Validation combines go-playground/validator struct tags for per-field
// constraints with cross-field checks (for example, a replay source must
// name a replay file). Load fails fast: a configuration that does not
// validate never reaches the pipeline.
package config
