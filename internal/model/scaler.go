// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package model

import (
	"fmt"
)

// Transformer applies a fitted, read-only vector transform.
type Transformer interface {
	Transform(vec []float64) ([]float64, error)
}

// StandardScaler is a fitted per-field affine transform:
// scaled = (x - mean) / scale. Mean and scale come from training time and
// are never refit here.
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// validate checks internal consistency and the expected feature contract.
// A scaler that disagrees with the training-time feature order would
// silently produce garbage classifications, so this fails loudly.
func (s *StandardScaler) validate(expectedFeatures []string) error {
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean/scale arity mismatch: %d vs %d", len(s.Mean), len(s.Scale))
	}
	if len(s.Mean) != len(expectedFeatures) {
		return fmt.Errorf("scaler arity %d does not match expected feature count %d", len(s.Mean), len(expectedFeatures))
	}
	if len(s.FeatureNames) != len(expectedFeatures) {
		return fmt.Errorf("scaler has %d feature names, expected %d", len(s.FeatureNames), len(expectedFeatures))
	}
	for i, name := range expectedFeatures {
		if s.FeatureNames[i] != name {
			return fmt.Errorf("scaler feature order mismatch at %d: fitted %q, expected %q", i, s.FeatureNames[i], name)
		}
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}
	return nil
}

// Transform applies the fitted affine transform to one vector. The input
// is not modified.
func (s *StandardScaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.Mean) {
		return nil, fmt.Errorf("vector arity %d does not match scaler arity %d", len(vec), len(s.Mean))
	}
	out := make([]float64, len(vec))
	for i, x := range vec {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}
