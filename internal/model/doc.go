// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package model loads and evaluates the pre-trained classification
// artifacts. Nothing in this package learns; every artifact is a fitted,
// read-only transform produced by the external training pipeline and
// evaluated as a black box behind two narrow interfaces:
//
//	Transformer: Transform(vector) -> vector
//	Predictor:   Predict(vector) -> class index
//
// Four JSON artifacts are loaded once at startup from the model directory:
//
//	scaler.json     {"feature_names":["time","protocol","length"],
//	                 "mean":[...], "scale":[...]}
//	protocols.json  {"classes":["0","ARP","ICMP","TCP","UDP"]}
//	labels.json     {"classes":["icmp_flood","normal","port_scan","syn_flood"]}
//	model.json      {"n_features":3,"trees":[{"nodes":[...]}, ...]}
//
// Each artifact degrades independently: a missing or corrupt file leaves
// that artifact nil and is reported once at startup. A pipeline running
// with missing artifacts classifies everything as "unknown" rather than
// crashing — an operator notices the absence of real alerts, not a dead
// process. The one exception is a scaler whose arity does not match the
// feature order contract: that is a loud load failure, because it would
// otherwise silently corrupt every classification.
package model
