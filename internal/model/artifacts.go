// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/netsentinel/internal/features"
	"github.com/tomtom215/netsentinel/internal/logging"
)

// Artifact file names within the model directory.
const (
	ScalerFile    = "scaler.json"
	ProtocolsFile = "protocols.json"
	LabelsFile    = "labels.json"
	ModelFile     = "model.json"
)

// Artifacts holds the fitted transforms loaded at startup. Any field may
// be nil if its artifact failed to load; the pipeline degrades to the
// unknown label whenever a required artifact is missing. All fields are
// read-only after Load and safe to share across events without locking.
type Artifacts struct {
	Scaler    *StandardScaler
	Protocols *ProtocolEncoder
	Labels    *LabelEncoder
	Model     *Forest
}

// Load reads all artifacts from dir. Each artifact degrades independently:
// a missing or corrupt file is logged once and leaves the field nil. Load
// itself only fails on contract violations that would otherwise corrupt
// every classification (a scaler or forest fitted to a different feature
// shape than features.FeatureOrder).
func Load(dir string) (*Artifacts, error) {
	a := &Artifacts{}

	scaler := &StandardScaler{}
	if loadArtifact(filepath.Join(dir, ScalerFile), scaler) {
		if err := scaler.validate(features.FeatureOrder); err != nil {
			return nil, fmt.Errorf("scaler artifact rejected: %w", err)
		}
		a.Scaler = scaler
	}

	protocols := &ProtocolEncoder{}
	if loadArtifact(filepath.Join(dir, ProtocolsFile), protocols) {
		if err := protocols.validate(); err != nil {
			logging.Warn().Err(err).Msg("protocol encoder artifact rejected, degrading to unknown classifications")
		} else {
			a.Protocols = protocols
		}
	}

	labels := &LabelEncoder{}
	if loadArtifact(filepath.Join(dir, LabelsFile), labels) {
		if err := labels.validate(); err != nil {
			logging.Warn().Err(err).Msg("label encoder artifact rejected, degrading to unknown classifications")
		} else {
			a.Labels = labels
		}
	}

	forest := &Forest{}
	if loadArtifact(filepath.Join(dir, ModelFile), forest) {
		if err := forest.validate(len(features.FeatureOrder)); err != nil {
			return nil, fmt.Errorf("model artifact rejected: %w", err)
		}
		a.Model = forest
	}

	if missing := a.Missing(); len(missing) > 0 {
		logging.Warn().
			Strs("missing", missing).
			Str("dir", dir).
			Msg("running degraded: all classifications will be \"unknown\" until artifacts are provided")
	}

	return a, nil
}

// loadArtifact unmarshals one artifact file into v. Failures are logged
// once and reported as false; they are startup degradation, not errors.
func loadArtifact(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn().Err(err).Str("artifact", path).Msg("failed to load artifact")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logging.Warn().Err(err).Str("artifact", path).Msg("failed to parse artifact")
		return false
	}
	return true
}

// Ready reports whether every artifact needed for real classification is
// loaded.
func (a *Artifacts) Ready() bool {
	return a.Scaler != nil && a.Protocols != nil && a.Labels != nil && a.Model != nil
}

// Missing names the artifacts that failed to load, for the one-time
// startup report.
func (a *Artifacts) Missing() []string {
	var missing []string
	if a.Scaler == nil {
		missing = append(missing, ScalerFile)
	}
	if a.Protocols == nil {
		missing = append(missing, ProtocolsFile)
	}
	if a.Labels == nil {
		missing = append(missing, LabelsFile)
	}
	if a.Model == nil {
		missing = append(missing, ModelFile)
	}
	return missing
}
